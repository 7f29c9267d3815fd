package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"proposalcraft/internal/domain/entities"
	"proposalcraft/internal/domain/render"
	"proposalcraft/internal/infrastructure/pdf"
	"proposalcraft/internal/usecase/interfaces"
	mock_interfaces "proposalcraft/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type documentMocks struct {
	repo     *mock_interfaces.MockIProposalRepository
	settings *mock_interfaces.MockICompanySettingsRepository
	exporter *mock_interfaces.MockIDocumentExporter
	storage  *mock_interfaces.MockIObjectStorage
}

func newDocumentUC(t *testing.T, withStorage bool) (*DocumentUseCase, documentMocks) {
	ctrl := gomock.NewController(t)
	m := documentMocks{
		repo:     mock_interfaces.NewMockIProposalRepository(ctrl),
		settings: mock_interfaces.NewMockICompanySettingsRepository(ctrl),
		exporter: mock_interfaces.NewMockIDocumentExporter(ctrl),
		storage:  mock_interfaces.NewMockIObjectStorage(ctrl),
	}
	var storage interfaces.IObjectStorage
	if withStorage {
		storage = m.storage
	}
	uc := NewDocumentUseCase(m.repo, m.settings, m.exporter, storage, "https://app.example.com/", entities.DefaultShareLinkTTL, nil, nil)
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func TestDocumentUseCase_Render(t *testing.T) {
	t.Run("uses stored template and company branding", func(t *testing.T) {
		uc, m := newDocumentUC(t, false)
		m.repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProposal(entities.ProposalStatusDraft), nil)
		m.settings.EXPECT().GetByOwnerID(gomock.Any(), "u-1").Return(entities.CompanySettings{OwnerID: "u-1", CompanyName: "Studio"}, nil)

		doc, err := uc.Render(context.Background(), "u-1", "p-1", "")
		require.NoError(t, err)
		assert.Equal(t, string(entities.TemplateModern), doc.Template)
		assert.Equal(t, "Studio", doc.Branding.CompanyName)
		assert.Equal(t, fixedNow, doc.Footer.GeneratedAt)
	})

	t.Run("missing settings renders without branding", func(t *testing.T) {
		uc, m := newDocumentUC(t, false)
		m.repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProposal(entities.ProposalStatusDraft), nil)
		m.settings.EXPECT().GetByOwnerID(gomock.Any(), "u-1").Return(entities.CompanySettings{}, nil)

		doc, err := uc.Render(context.Background(), "u-1", "p-1", entities.TemplateElegant)
		require.NoError(t, err)
		assert.Equal(t, string(entities.TemplateElegant), doc.Template)
		assert.Equal(t, render.Branding{}, doc.Branding)
	})

	t.Run("unknown template", func(t *testing.T) {
		uc, m := newDocumentUC(t, false)
		m.repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProposal(entities.ProposalStatusDraft), nil)
		m.settings.EXPECT().GetByOwnerID(gomock.Any(), "u-1").Return(entities.CompanySettings{}, nil)

		_, err := uc.Render(context.Background(), "u-1", "p-1", "brutalist")
		assert.ErrorIs(t, err, entities.ErrUnknownTemplate)
	})

	t.Run("other owner cannot render", func(t *testing.T) {
		uc, m := newDocumentUC(t, false)
		m.repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProposal(entities.ProposalStatusDraft), nil)

		_, err := uc.Render(context.Background(), "u-2", "p-1", "")
		assert.ErrorIs(t, err, ErrProposalNotFound)
	})
}

func TestDocumentUseCase_RenderShared_Expired(t *testing.T) {
	uc, m := newDocumentUC(t, false)
	p := storedProposal(entities.ProposalStatusSent)
	past := fixedNow.Add(-time.Second)
	p.ShareExpiresAt = &past
	m.repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)

	_, err := uc.RenderShared(context.Background(), "p-1", "")
	assert.ErrorIs(t, err, ErrShareLinkExpired)
}

func TestDocumentUseCase_Export(t *testing.T) {
	pdf := render.ExportedDocument{ContentType: "application/pdf", Data: []byte("%PDF-1.3"), Pages: 2}

	t.Run("archives and records the url", func(t *testing.T) {
		uc, m := newDocumentUC(t, true)
		m.repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProposal(entities.ProposalStatusSent), nil)
		m.settings.EXPECT().GetByOwnerID(gomock.Any(), "u-1").Return(entities.CompanySettings{}, nil)
		m.exporter.EXPECT().Export(gomock.Any()).Return(pdf, nil)
		wantName := "proposta-acme-1773144000000.pdf"
		m.storage.EXPECT().Upload(gomock.Any(), "exports/u-1/p-1/"+wantName, gomock.Any(), "application/pdf").
			Return("https://cdn.example.com/exports/u-1/p-1/"+wantName, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), int64(3), entities.ProposalStatusSent).
			DoAndReturn(func(ctx context.Context, p entities.Proposal, v int64, s entities.ProposalStatus) (entities.Proposal, error) {
				assert.Equal(t, "https://cdn.example.com/exports/u-1/p-1/"+wantName, p.PDFURL)
				return echoUpdate(ctx, p, v, s)
			})

		res, err := uc.Export(context.Background(), "u-1", "p-1", "")
		require.NoError(t, err)
		assert.Equal(t, wantName, res.FileName)
		assert.Equal(t, 2, res.Pages)
		assert.Contains(t, res.URL, wantName)
	})

	t.Run("archive failure still returns the file", func(t *testing.T) {
		uc, m := newDocumentUC(t, true)
		m.repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProposal(entities.ProposalStatusDraft), nil)
		m.settings.EXPECT().GetByOwnerID(gomock.Any(), "u-1").Return(entities.CompanySettings{}, nil)
		m.exporter.EXPECT().Export(gomock.Any()).Return(pdf, nil)
		m.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("s3 down"))

		res, err := uc.Export(context.Background(), "u-1", "p-1", "")
		require.NoError(t, err)
		assert.Empty(t, res.URL)
		assert.Equal(t, pdf.Data, res.Data)
	})

	t.Run("export error", func(t *testing.T) {
		uc, m := newDocumentUC(t, false)
		m.repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProposal(entities.ProposalStatusDraft), nil)
		m.settings.EXPECT().GetByOwnerID(gomock.Any(), "u-1").Return(entities.CompanySettings{}, nil)
		m.exporter.EXPECT().Export(gomock.Any()).Return(render.ExportedDocument{}, entities.ErrExport)

		_, err := uc.Export(context.Background(), "u-1", "p-1", "")
		assert.ErrorIs(t, err, entities.ErrExport)
	})
}

func TestDocumentUseCase_ShareLink(t *testing.T) {
	t.Run("draft counts from creation", func(t *testing.T) {
		uc, m := newDocumentUC(t, false)
		m.repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProposal(entities.ProposalStatusDraft), nil)

		link, err := uc.ShareLink(context.Background(), "u-1", "p-1")
		require.NoError(t, err)
		assert.Equal(t, "https://app.example.com/proposal/p-1", link.URL)
		require.NotNil(t, link.ExpiresAt)
		assert.Equal(t, fixedNow.Add(-time.Hour).Add(entities.DefaultShareLinkTTL), *link.ExpiresAt)
	})

	t.Run("sent proposal keeps the expiry stamped at send", func(t *testing.T) {
		uc, m := newDocumentUC(t, false)
		p := storedProposal(entities.ProposalStatusDraft)
		p.CreatedAt = time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
		sentAt := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
		sent, err := p.Send(sentAt, entities.DefaultShareLinkTTL)
		require.NoError(t, err)
		m.repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(sent, nil)

		link, err := uc.ShareLink(context.Background(), "u-1", "p-1")
		require.NoError(t, err)
		require.NotNil(t, link.ExpiresAt)
		assert.Equal(t, sentAt.Add(entities.DefaultShareLinkTTL), *link.ExpiresAt)
	})
}

func TestDocumentUseCase_ExportWithPDFExporter(t *testing.T) {
	for _, tpl := range []entities.TemplateID{entities.TemplateModern, entities.TemplateElegant} {
		t.Run(string(tpl), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIProposalRepository(ctrl)
			settings := mock_interfaces.NewMockICompanySettingsRepository(ctrl)
			uc := NewDocumentUseCase(repo, settings, pdf.NewExporter(50, nil), nil, "https://app.example.com", entities.DefaultShareLinkTTL, nil, nil)
			uc.now = func() time.Time { return fixedNow }

			accepted, err := storedProposal(entities.ProposalStatusDraft).Accept("Maria Silva", true, fixedNow)
			require.NoError(t, err)
			accepted.Description = "Página de captação com formulário e seção de depoimentos."
			repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(accepted, nil)
			settings.EXPECT().GetByOwnerID(gomock.Any(), "u-1").Return(entities.CompanySettings{OwnerID: "u-1", CompanyName: "Estúdio Ação"}, nil)

			var res ExportResult
			require.NotPanics(t, func() {
				res, err = uc.Export(context.Background(), "u-1", "p-1", tpl)
			})
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(res.Data, []byte("%PDF")))
			assert.Equal(t, render.ExportFileName("Acme", fixedNow), res.FileName)
			assert.Empty(t, res.URL)
		})
	}
}
