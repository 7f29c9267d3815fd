package handlers

import (
	"net/http"
	"testing"
	"time"

	"proposalcraft/internal/adapter/http/handlers/mocks"
	"proposalcraft/internal/domain/entities"
	"proposalcraft/internal/domain/render"
	"proposalcraft/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestDocumentHandler_GetDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIDocumentUseCase(ctrl)
	h := NewDocumentHandler(uc, nil)
	r := newRouter("u-1")
	r.GET("/v1/proposals/:id/document", h.GetDocument)

	uc.EXPECT().Render(gomock.Any(), "u-1", "p-1", entities.TemplateID("")).Return(render.Document{ProposalID: "p-1"}, nil)
	assertStatus(t, serve(r, http.MethodGet, "/v1/proposals/p-1/document", nil, ""), http.StatusOK)

	uc.EXPECT().Render(gomock.Any(), "u-1", "p-1", entities.TemplateID("neon")).Return(render.Document{}, entities.ErrUnknownTemplate)
	assertStatus(t, serve(r, http.MethodGet, "/v1/proposals/p-1/document?template=neon", nil, ""), http.StatusBadRequest)
}

func TestDocumentHandler_ExportPDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIDocumentUseCase(ctrl)
	h := NewDocumentHandler(uc, nil)
	r := newRouter("u-1")
	r.GET("/v1/proposals/:id/export", h.ExportPDF)

	uc.EXPECT().Export(gomock.Any(), "u-1", "p-1", entities.TemplateModern).Return(usecase.ExportResult{
		ExportedDocument: render.ExportedDocument{
			FileName:    "proposta-acme-1.pdf",
			ContentType: "application/pdf",
			Data:        []byte("%PDF-1.3"),
			Pages:       1,
		},
		URL: "https://cdn/exports/p.pdf",
	}, nil)

	w := serve(r, http.MethodGet, "/v1/proposals/p-1/export?template=modern", nil, "")
	assertStatus(t, w, http.StatusOK)
	if got := w.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("unexpected content type %q", got)
	}
	if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="proposta-acme-1.pdf"` {
		t.Fatalf("unexpected disposition %q", got)
	}
	if got := w.Header().Get(ArchiveURLHeader); got != "https://cdn/exports/p.pdf" {
		t.Fatalf("unexpected archive url %q", got)
	}
	if w.Body.String() != "%PDF-1.3" {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}

func TestDocumentHandler_GetShareLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIDocumentUseCase(ctrl)
	h := NewDocumentHandler(uc, nil)
	r := newRouter("u-1")
	r.GET("/v1/proposals/:id/share", h.GetShareLink)

	exp := fixedNow.Add(30 * 24 * time.Hour)
	uc.EXPECT().ShareLink(gomock.Any(), "u-1", "p-1").Return(usecase.ShareLink{URL: "https://app/proposal/p-1", ExpiresAt: &exp}, nil)
	w := serve(r, http.MethodGet, "/v1/proposals/p-1/share", nil, "")
	assertStatus(t, w, http.StatusOK)

	uc.EXPECT().ShareLink(gomock.Any(), "u-1", "p-2").Return(usecase.ShareLink{}, usecase.ErrProposalNotFound)
	assertStatus(t, serve(r, http.MethodGet, "/v1/proposals/p-2/share", nil, ""), http.StatusNotFound)
}
