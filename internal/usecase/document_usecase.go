package usecase

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"proposalcraft/internal/domain/entities"
	"proposalcraft/internal/domain/render"
	"proposalcraft/internal/metrics"
	"proposalcraft/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ExportResult is an exported PDF plus the URL of its archived copy. URL is
// empty when archiving failed or no storage is configured.
type ExportResult struct {
	render.ExportedDocument
	URL string
}

// ShareLink is the public address of a proposal.
type ShareLink struct {
	URL       string     `json:"url"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type IDocumentUseCase interface {
	Render(ctx context.Context, ownerID, id string, templateID entities.TemplateID) (render.Document, error)
	RenderShared(ctx context.Context, id string, templateID entities.TemplateID) (render.Document, error)
	Export(ctx context.Context, ownerID, id string, templateID entities.TemplateID) (ExportResult, error)
	ShareLink(ctx context.Context, ownerID, id string) (ShareLink, error)
}

type DocumentUseCase struct {
	repo          interfaces.IProposalRepository
	settingsRepo  interfaces.ICompanySettingsRepository
	exporter      interfaces.IDocumentExporter
	storage       interfaces.IObjectStorage
	publicBaseURL string
	shareTTL      time.Duration
	metrics       *metrics.Metrics
	logger        *zap.Logger
	now           func() time.Time
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(
	repo interfaces.IProposalRepository,
	settingsRepo interfaces.ICompanySettingsRepository,
	exporter interfaces.IDocumentExporter,
	storage interfaces.IObjectStorage,
	publicBaseURL string,
	shareTTL time.Duration,
	m *metrics.Metrics,
	logger *zap.Logger,
) *DocumentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentUseCase{
		repo:          repo,
		settingsRepo:  settingsRepo,
		exporter:      exporter,
		storage:       storage,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		shareTTL:      shareTTL,
		metrics:       m,
		logger:        logger,
		now:           utcNow,
	}
}

// Render builds the preview document. An empty templateID selects the
// template stored on the proposal.
func (u *DocumentUseCase) Render(ctx context.Context, ownerID, id string, templateID entities.TemplateID) (render.Document, error) {
	p, err := loadOwned(ctx, u.repo, ownerID, id)
	if err != nil {
		return render.Document{}, err
	}
	return u.render(ctx, p, templateID)
}

func (u *DocumentUseCase) RenderShared(ctx context.Context, id string, templateID entities.TemplateID) (render.Document, error) {
	p, err := loadShared(ctx, u.repo, id, u.now(), u.shareTTL)
	if err != nil {
		return render.Document{}, err
	}
	return u.render(ctx, p, templateID)
}

// Export renders and paginates the proposal into a PDF. The file is archived
// in object storage and its URL recorded on the proposal; archiving problems
// are logged and do not fail the download.
func (u *DocumentUseCase) Export(ctx context.Context, ownerID, id string, templateID entities.TemplateID) (ExportResult, error) {
	p, err := loadOwned(ctx, u.repo, ownerID, id)
	if err != nil {
		return ExportResult{}, err
	}
	doc, err := u.render(ctx, p, templateID)
	if err != nil {
		return ExportResult{}, err
	}

	out, err := u.exporter.Export(doc)
	u.metrics.Export(doc.Template, out.Pages, err)
	if err != nil {
		u.logger.Error("[document][usecase] export failed", zap.String("proposal_id", p.ID), zap.Error(err))
		return ExportResult{}, err
	}
	out.FileName = render.ExportFileName(p.ClientName, u.now())

	res := ExportResult{ExportedDocument: out}
	res.URL = u.archive(ctx, p, out)
	return res, nil
}

func (u *DocumentUseCase) archive(ctx context.Context, p entities.Proposal, out render.ExportedDocument) string {
	if u.storage == nil {
		return ""
	}
	key := fmt.Sprintf("exports/%s/%s/%s", p.OwnerID, p.ID, out.FileName)
	url, err := u.storage.Upload(ctx, key, bytes.NewReader(out.Data), out.ContentType)
	if err != nil {
		u.logger.Warn("[document][usecase] archive upload failed", zap.String("proposal_id", p.ID), zap.Error(err))
		return ""
	}

	next := p
	next.PDFURL = url
	next.UpdatedAt = u.now()
	if _, err := save(ctx, u.repo, next, p); err != nil {
		u.logger.Warn("[document][usecase] pdf url not recorded", zap.String("proposal_id", p.ID), zap.Error(err))
	}
	return url
}

func (u *DocumentUseCase) ShareLink(ctx context.Context, ownerID, id string) (ShareLink, error) {
	p, err := loadOwned(ctx, u.repo, ownerID, id)
	if err != nil {
		return ShareLink{}, err
	}
	link := ShareLink{URL: u.publicBaseURL + "/proposal/" + p.ID, ExpiresAt: p.ShareExpiresAt}
	if link.ExpiresAt == nil && u.shareTTL > 0 {
		exp := p.CreatedAt.Add(u.shareTTL)
		link.ExpiresAt = &exp
	}
	return link, nil
}

func (u *DocumentUseCase) render(ctx context.Context, p entities.Proposal, templateID entities.TemplateID) (render.Document, error) {
	if templateID == "" {
		templateID = p.Template
	}
	settings, err := u.settings(ctx, p.OwnerID)
	if err != nil {
		return render.Document{}, err
	}
	return render.Render(p, templateID, settings, u.now())
}

// settings returns nil when the owner never saved company settings.
func (u *DocumentUseCase) settings(ctx context.Context, ownerID string) (*entities.CompanySettings, error) {
	if u.settingsRepo == nil {
		return nil, nil
	}
	s, err := u.settingsRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if s.OwnerID == "" {
		return nil, nil
	}
	return &s, nil
}
