package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"proposalcraft/internal/domain/entities"
	"proposalcraft/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrSettingsNotFound = errors.New("company settings not found")

type ICompanySettingsUseCase interface {
	Get(ctx context.Context, ownerID string) (entities.CompanySettings, error)
	Upsert(ctx context.Context, ownerID string, s entities.CompanySettings) (entities.CompanySettings, error)
	UploadLogo(ctx context.Context, ownerID string, upload Upload) (entities.CompanySettings, error)
}

type CompanySettingsUseCase struct {
	repo    interfaces.ICompanySettingsRepository
	storage interfaces.IObjectStorage
	logger  *zap.Logger
	now     func() time.Time
}

var _ ICompanySettingsUseCase = (*CompanySettingsUseCase)(nil)

func NewCompanySettingsUseCase(repo interfaces.ICompanySettingsRepository, storage interfaces.IObjectStorage, logger *zap.Logger) *CompanySettingsUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CompanySettingsUseCase{repo: repo, storage: storage, logger: logger, now: utcNow}
}

func (u *CompanySettingsUseCase) Get(ctx context.Context, ownerID string) (entities.CompanySettings, error) {
	s, err := u.get(ctx, ownerID)
	if err != nil {
		return entities.CompanySettings{}, err
	}
	if s.OwnerID == "" {
		return entities.CompanySettings{}, ErrSettingsNotFound
	}
	return s, nil
}

// Upsert replaces the owner's settings, keeping the original creation time.
// The logo URL is only changed through UploadLogo or when explicitly sent.
func (u *CompanySettingsUseCase) Upsert(ctx context.Context, ownerID string, s entities.CompanySettings) (entities.CompanySettings, error) {
	existing, err := u.get(ctx, ownerID)
	if err != nil {
		return entities.CompanySettings{}, err
	}
	s.OwnerID = strings.TrimSpace(ownerID)
	if strings.TrimSpace(s.LogoURL) == "" {
		s.LogoURL = existing.LogoURL
	}
	return u.write(ctx, existing, s)
}

// UploadLogo stores the company logo at logos/<owner>/logo.<ext>, replacing
// any previous one, and records its URL in the settings.
func (u *CompanySettingsUseCase) UploadLogo(ctx context.Context, ownerID string, upload Upload) (entities.CompanySettings, error) {
	ext, err := upload.imageExtension()
	if err != nil {
		return entities.CompanySettings{}, err
	}
	existing, err := u.get(ctx, ownerID)
	if err != nil {
		return entities.CompanySettings{}, err
	}
	if u.storage == nil {
		return entities.CompanySettings{}, ErrStorageNotConfigured
	}

	ownerID = strings.TrimSpace(ownerID)
	key := fmt.Sprintf("logos/%s/logo%s", ownerID, ext)
	url, err := u.storage.Upload(ctx, key, upload.Body, upload.ContentType)
	if err != nil {
		u.logger.Error("[settings][usecase] logo upload failed", zap.String("owner_id", ownerID), zap.Error(err))
		return entities.CompanySettings{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	next := existing
	next.OwnerID = ownerID
	next.LogoURL = url
	return u.write(ctx, existing, next)
}

func (u *CompanySettingsUseCase) get(ctx context.Context, ownerID string) (entities.CompanySettings, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.CompanySettings{}, ErrInvalidOwnerID
	}
	s, err := u.repo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return entities.CompanySettings{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return s, nil
}

func (u *CompanySettingsUseCase) write(ctx context.Context, existing, next entities.CompanySettings) (entities.CompanySettings, error) {
	normalized, err := next.Normalize()
	if err != nil {
		return entities.CompanySettings{}, err
	}
	now := u.now()
	normalized.CreatedAt = existing.CreatedAt
	if normalized.CreatedAt.IsZero() {
		normalized.CreatedAt = now
	}
	normalized.UpdatedAt = now

	saved, err := u.repo.Upsert(ctx, normalized)
	if err != nil {
		u.logger.Error("[settings][usecase] upsert failed", zap.String("owner_id", normalized.OwnerID), zap.Error(err))
		return entities.CompanySettings{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	u.logger.Info("[settings][usecase] settings saved", zap.String("owner_id", saved.OwnerID))
	return saved, nil
}
