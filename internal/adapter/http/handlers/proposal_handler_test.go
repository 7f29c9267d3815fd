package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"proposalcraft/internal/adapter/http/handlers/mocks"
	"proposalcraft/internal/domain/entities"
	"proposalcraft/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestProposalHandler_CreateProposal(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc, nil)
		r := newRouter("u-1")
		r.POST("/v1/proposals", h.CreateProposal)

		w := serve(r, http.MethodPost, "/v1/proposals", jsonBody(`{"client_name":""}`), "application/json")
		assertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc, nil)
		r := newRouter("u-1")
		r.POST("/v1/proposals", h.CreateProposal)

		uc.EXPECT().CreateFromBriefing(gomock.Any(), "u-1", gomock.Any()).
			Return(entities.Proposal{}, errors.Join(entities.ErrValidation, errors.New("client_email is invalid")))

		w := serve(r, http.MethodPost, "/v1/proposals", jsonBody(`{"client_name":"Acme","client_email":"x","project_type":"landing"}`), "application/json")
		assertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc, nil)
		r := newRouter("u-1")
		r.POST("/v1/proposals", h.CreateProposal)

		uc.EXPECT().CreateFromBriefing(gomock.Any(), "u-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, b entities.Briefing) (entities.Proposal, error) {
				if b.ClientName != "Acme" || b.ProjectType != entities.ProjectTypeLanding {
					t.Fatalf("unexpected briefing: %+v", b)
				}
				return sampleProposal(entities.ProposalStatusDraft), nil
			})

		w := serve(r, http.MethodPost, "/v1/proposals", jsonBody(`{"client_name":"Acme","client_email":"a@acme.com","project_type":"landing","features":["Sistema de contato"]}`), "application/json")
		assertStatus(t, w, http.StatusCreated)
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "p-1" || body["status"] != "draft" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestProposalHandler_ListProposals(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIProposalUseCase(ctrl)
	h := NewProposalHandler(uc, nil)
	r := newRouter("u-1")
	r.GET("/v1/proposals", h.ListProposals)

	uc.EXPECT().ListByOwner(gomock.Any(), "u-1").Return(nil, nil)
	w := serve(r, http.MethodGet, "/v1/proposals", nil, "")
	assertStatus(t, w, http.StatusOK)
	if w.Body.String() != "[]" {
		t.Fatalf("expected empty list, got %s", w.Body.String())
	}

	uc.EXPECT().ListByOwner(gomock.Any(), "u-1").Return(nil, usecase.ErrPersistence)
	w = serve(r, http.MethodGet, "/v1/proposals", nil, "")
	assertStatus(t, w, http.StatusInternalServerError)
}

func TestProposalHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", usecase.ErrProposalNotFound, http.StatusNotFound, "PROPOSAL_NOT_FOUND"},
		{"not editable", entities.ErrNotEditable, http.StatusConflict, "PROPOSAL_NOT_EDITABLE"},
		{"conflict", usecase.ErrProposalConflict, http.StatusConflict, "PROPOSAL_CONFLICT"},
		{"transition", entities.ErrInvalidTransition, http.StatusConflict, "INVALID_STATUS_TRANSITION"},
		{"unknown template", entities.ErrUnknownTemplate, http.StatusBadRequest, "UNKNOWN_TEMPLATE"},
		{"expired", usecase.ErrShareLinkExpired, http.StatusGone, "SHARE_LINK_EXPIRED"},
		{"export", entities.ErrExport, http.StatusInternalServerError, "EXPORT_FAILED"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIProposalUseCase(ctrl)
			h := NewProposalHandler(uc, nil)
			r := newRouter("u-1")
			r.PATCH("/v1/proposals/:id", h.UpdateProposal)

			uc.EXPECT().ApplyEdits(gomock.Any(), "u-1", "p-1", gomock.Any()).Return(entities.Proposal{}, tc.err)

			w := serve(r, http.MethodPatch, "/v1/proposals/p-1", jsonBody(`{"client_name":"New","version":1}`), "application/json")
			assertStatus(t, w, tc.status)
			var body struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &body)
			if body.Error.Code != tc.code {
				t.Fatalf("expected code %s, got %s", tc.code, w.Body.String())
			}
		})
	}
}

func TestProposalHandler_UpdateProposal_PassesPatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIProposalUseCase(ctrl)
	h := NewProposalHandler(uc, nil)
	r := newRouter("u-1")
	r.PATCH("/v1/proposals/:id", h.UpdateProposal)

	uc.EXPECT().ApplyEdits(gomock.Any(), "u-1", "p-1", gomock.Any()).DoAndReturn(
		func(_ any, _, _ string, patch entities.ProposalPatch) (entities.Proposal, error) {
			if patch.ClientName == nil || *patch.ClientName != "New" || patch.ExpectedVersion != 1 || patch.Features != nil {
				t.Fatalf("unexpected patch: %+v", patch)
			}
			return sampleProposal(entities.ProposalStatusDraft), nil
		})

	w := serve(r, http.MethodPatch, "/v1/proposals/p-1", jsonBody(`{"client_name":"New","version":1}`), "application/json")
	assertStatus(t, w, http.StatusOK)
}

func TestProposalHandler_SendProposal(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIProposalUseCase(ctrl)
	h := NewProposalHandler(uc, nil)
	r := newRouter("u-1")
	r.POST("/v1/proposals/:id/send", h.SendProposal)

	uc.EXPECT().Send(gomock.Any(), "u-1", "p-1").Return(sampleProposal(entities.ProposalStatusSent), nil)
	w := serve(r, http.MethodPost, "/v1/proposals/p-1/send", nil, "")
	assertStatus(t, w, http.StatusOK)
}

func TestProposalHandler_UploadClientLogo(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc, nil)
		r := newRouter("u-1")
		r.POST("/v1/proposals/:id/logo", h.UploadClientLogo)

		w := serve(r, http.MethodPost, "/v1/proposals/p-1/logo", jsonBody(`{}`), "application/json")
		assertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewProposalHandler(uc, nil)
		r := newRouter("u-1")
		r.POST("/v1/proposals/:id/logo", h.UploadClientLogo)

		uc.EXPECT().UploadClientLogo(gomock.Any(), "u-1", "p-1", gomock.Any()).DoAndReturn(
			func(_ any, _, _ string, up usecase.Upload) (entities.Proposal, error) {
				if up.FileName != "logo.png" || up.ContentType != "image/png" || up.Size != 3 {
					t.Fatalf("unexpected upload: %+v", up)
				}
				return sampleProposal(entities.ProposalStatusDraft), nil
			})

		body, ct := multipartFile(t, "logo.png", "image/png", []byte("png"))
		w := serve(r, http.MethodPost, "/v1/proposals/p-1/logo", body, ct)
		assertStatus(t, w, http.StatusOK)
	})
}
