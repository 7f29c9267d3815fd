package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"proposalcraft/internal/domain/entities"
	"proposalcraft/internal/metrics"
	"proposalcraft/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrProposalNotFound  = errors.New("proposal not found")
	ErrProposalConflict  = errors.New("proposal was modified concurrently")
	ErrInvalidProposalID = errors.New("invalid proposal id")
	ErrInvalidOwnerID    = errors.New("invalid owner id")
	ErrPersistence       = errors.New("persistence error")
)

// IProposalUseCase exposes the owner side of the proposal lifecycle.
type IProposalUseCase interface {
	CreateFromBriefing(ctx context.Context, ownerID string, b entities.Briefing) (entities.Proposal, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Proposal, error)
	GetForOwner(ctx context.Context, ownerID, id string) (entities.Proposal, error)
	ApplyEdits(ctx context.Context, ownerID, id string, patch entities.ProposalPatch) (entities.Proposal, error)
	Send(ctx context.Context, ownerID, id string) (entities.Proposal, error)
	UploadClientLogo(ctx context.Context, ownerID, id string, upload Upload) (entities.Proposal, error)
}

type ProposalUseCase struct {
	repo     interfaces.IProposalRepository
	storage  interfaces.IObjectStorage
	shareTTL time.Duration
	metrics  *metrics.Metrics
	logger   *zap.Logger
	now      func() time.Time
	newID    func() string
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(repo interfaces.IProposalRepository, storage interfaces.IObjectStorage, shareTTL time.Duration, m *metrics.Metrics, logger *zap.Logger) *ProposalUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProposalUseCase{
		repo:     repo,
		storage:  storage,
		shareTTL: shareTTL,
		metrics:  m,
		logger:   logger,
		now:      utcNow,
		newID:    uuid.NewString,
	}
}

func (u *ProposalUseCase) CreateFromBriefing(ctx context.Context, ownerID string, b entities.Briefing) (entities.Proposal, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.Proposal{}, ErrInvalidOwnerID
	}

	p, err := entities.NewProposalFromBriefing(b, u.newID(), u.now())
	if err != nil {
		u.logger.Info("[proposal][usecase] briefing rejected", zap.String("owner_id", ownerID), zap.Error(err))
		return entities.Proposal{}, err
	}
	p.OwnerID = ownerID

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.logger.Error("[proposal][usecase] create failed", zap.String("proposal_id", p.ID), zap.Error(err))
		return entities.Proposal{}, persistenceError(err)
	}
	u.metrics.ProposalCreated()
	u.logger.Info("[proposal][usecase] proposal created",
		zap.String("proposal_id", created.ID),
		zap.String("owner_id", ownerID),
		zap.String("project_type", string(created.ProjectType)))
	return created, nil
}

func (u *ProposalUseCase) ListByOwner(ctx context.Context, ownerID string) ([]entities.Proposal, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}
	list, err := u.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, persistenceError(err)
	}
	return list, nil
}

func (u *ProposalUseCase) GetForOwner(ctx context.Context, ownerID, id string) (entities.Proposal, error) {
	return loadOwned(ctx, u.repo, ownerID, id)
}

func (u *ProposalUseCase) ApplyEdits(ctx context.Context, ownerID, id string, patch entities.ProposalPatch) (entities.Proposal, error) {
	p, err := loadOwned(ctx, u.repo, ownerID, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if patch.ExpectedVersion != 0 && patch.ExpectedVersion != p.Version {
		return entities.Proposal{}, fmt.Errorf("%w: version is %d", ErrProposalConflict, p.Version)
	}

	edited, err := p.ApplyEdits(patch, u.now())
	if err != nil {
		return entities.Proposal{}, err
	}
	saved, err := save(ctx, u.repo, edited, p)
	if err != nil {
		u.logger.Warn("[proposal][usecase] edit not saved", zap.String("proposal_id", p.ID), zap.Error(err))
		return entities.Proposal{}, err
	}
	u.logger.Info("[proposal][usecase] proposal edited", zap.String("proposal_id", saved.ID), zap.Int64("version", saved.Version))
	return saved, nil
}

func (u *ProposalUseCase) Send(ctx context.Context, ownerID, id string) (entities.Proposal, error) {
	p, err := loadOwned(ctx, u.repo, ownerID, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	sent, err := p.Send(u.now(), u.shareTTL)
	if err != nil {
		return entities.Proposal{}, err
	}
	saved, err := save(ctx, u.repo, sent, p)
	if err != nil {
		return entities.Proposal{}, err
	}
	u.metrics.Transition(string(saved.Status))
	u.logger.Info("[proposal][usecase] proposal sent", zap.String("proposal_id", saved.ID))
	return saved, nil
}

// UploadClientLogo stores the client's logo and links it to a draft proposal.
func (u *ProposalUseCase) UploadClientLogo(ctx context.Context, ownerID, id string, upload Upload) (entities.Proposal, error) {
	ext, err := upload.imageExtension()
	if err != nil {
		return entities.Proposal{}, err
	}
	p, err := loadOwned(ctx, u.repo, ownerID, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.Status != entities.ProposalStatusDraft {
		return entities.Proposal{}, fmt.Errorf("%w: status is %s", entities.ErrNotEditable, p.Status)
	}
	if u.storage == nil {
		return entities.Proposal{}, ErrStorageNotConfigured
	}

	key := fmt.Sprintf("proposals/%s/client-logo%s", p.ID, ext)
	url, err := u.storage.Upload(ctx, key, upload.Body, upload.ContentType)
	if err != nil {
		u.logger.Error("[proposal][usecase] logo upload failed", zap.String("proposal_id", p.ID), zap.Error(err))
		return entities.Proposal{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	edited, err := p.ApplyEdits(entities.ProposalPatch{ClientLogoURL: &url}, u.now())
	if err != nil {
		return entities.Proposal{}, err
	}
	return save(ctx, u.repo, edited, p)
}

// loadOwned returns the proposal only when it belongs to ownerID. Proposals of
// other owners are reported as not found.
func loadOwned(ctx context.Context, repo interfaces.IProposalRepository, ownerID, id string) (entities.Proposal, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return entities.Proposal{}, ErrInvalidOwnerID
	}
	p, err := load(ctx, repo, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.OwnerID != ownerID {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

func load(ctx context.Context, repo interfaces.IProposalRepository, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, persistenceError(err)
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

// save persists next only if the stored proposal still matches prev.
func save(ctx context.Context, repo interfaces.IProposalRepository, next, prev entities.Proposal) (entities.Proposal, error) {
	saved, err := repo.Update(ctx, next, prev.Version, prev.Status)
	if err != nil {
		return entities.Proposal{}, persistenceError(err)
	}
	return saved, nil
}

func persistenceError(err error) error {
	if errors.Is(err, interfaces.ErrConditionFailed) {
		return fmt.Errorf("%w: %v", ErrProposalConflict, err)
	}
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}

func utcNow() time.Time {
	return time.Now().UTC()
}
