package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"proposalcraft/internal/adapter/http/handlers/mocks"
	"proposalcraft/internal/domain/entities"
	"proposalcraft/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestDepositPaymentHandler_CreateDeposit(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		h := NewDepositPaymentHandler(uc, false, nil)
		r := newRouter("")
		r.POST("/v1/public/proposals/:id/deposit", h.CreateDeposit)

		assertStatus(t, serve(r, http.MethodPost, "/v1/public/proposals/p-1/deposit", jsonBody("{"), "application/json"), http.StatusBadRequest)
	})

	t.Run("mock mode tolerates invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		h := NewDepositPaymentHandler(uc, true, nil)
		r := newRouter("")
		r.POST("/v1/public/proposals/:id/deposit", h.CreateDeposit)

		uc.EXPECT().CreateDeposit(gomock.Any(), "p-1", json.RawMessage("{}")).
			Return(entities.DepositPayment{ID: "pay-1", ProposalID: "p-1", Status: entities.PaymentStatusAprovado}, nil)
		assertStatus(t, serve(r, http.MethodPost, "/v1/public/proposals/p-1/deposit", jsonBody("{"), "application/json"), http.StatusOK)
	})

	t.Run("not accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		h := NewDepositPaymentHandler(uc, false, nil)
		r := newRouter("")
		r.POST("/v1/public/proposals/:id/deposit", h.CreateDeposit)

		uc.EXPECT().CreateDeposit(gomock.Any(), "p-1", gomock.Any()).Return(entities.DepositPayment{}, usecase.ErrProposalNotAccepted)
		assertStatus(t, serve(r, http.MethodPost, "/v1/public/proposals/p-1/deposit", jsonBody(`{"payment_method_id":"pix"}`), "application/json"), http.StatusConflict)
	})

	t.Run("unwraps envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		h := NewDepositPaymentHandler(uc, false, nil)
		r := newRouter("")
		r.POST("/v1/public/proposals/:id/deposit", h.CreateDeposit)

		uc.EXPECT().CreateDeposit(gomock.Any(), "p-1", json.RawMessage(`{"payment_method_id":"pix"}`)).
			Return(entities.DepositPayment{ID: "pay-1", ProposalID: "p-1", Amount: 1250, Status: entities.PaymentStatusAprovado}, nil)

		w := serve(r, http.MethodPost, "/v1/public/proposals/p-1/deposit", jsonBody(`{"mp_payload":{"payment_method_id":"pix"}}`), "application/json")
		assertStatus(t, w, http.StatusOK)
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" || body["amount"] != float64(1250) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("empty envelope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		h := NewDepositPaymentHandler(uc, false, nil)
		r := newRouter("")
		r.POST("/v1/public/proposals/:id/deposit", h.CreateDeposit)

		assertStatus(t, serve(r, http.MethodPost, "/v1/public/proposals/p-1/deposit", jsonBody(`{"mp_payload":null}`), "application/json"), http.StatusBadRequest)
	})
}

func TestDepositPaymentHandler_GetDeposit(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
	h := NewDepositPaymentHandler(uc, false, nil)
	r := newRouter("")
	r.GET("/v1/public/proposals/:id/deposit", h.GetDeposit)

	uc.EXPECT().LatestByProposal(gomock.Any(), "p-1").Return(entities.DepositPayment{}, usecase.ErrDepositNotFound)
	assertStatus(t, serve(r, http.MethodGet, "/v1/public/proposals/p-1/deposit", nil, ""), http.StatusNotFound)

	uc.EXPECT().LatestByProposal(gomock.Any(), "p-1").Return(entities.DepositPayment{ID: "pay-1", ProposalID: "p-1"}, nil)
	assertStatus(t, serve(r, http.MethodGet, "/v1/public/proposals/p-1/deposit", nil, ""), http.StatusOK)
}
