package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"proposalcraft/internal/domain/entities"
	mock_interfaces "proposalcraft/internal/usecase/interfaces/mocks"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.uber.org/mock/gomock"
)

type depositMocks struct {
	repo      *mock_interfaces.MockIDepositPaymentRepository
	proposals *mock_interfaces.MockIProposalRepository
	gateway   *mock_interfaces.MockIPaymentGateway
}

func newDepositUC(t *testing.T, mockMode bool) (*DepositPaymentUseCase, depositMocks) {
	ctrl := gomock.NewController(t)
	m := depositMocks{
		repo:      mock_interfaces.NewMockIDepositPaymentRepository(ctrl),
		proposals: mock_interfaces.NewMockIProposalRepository(ctrl),
		gateway:   mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	uc := NewDepositPaymentUseCase(m.repo, m.proposals, m.gateway, 50, mockMode, nil, nil)
	uc.now = func() time.Time { return fixedNow }
	return uc, m
}

func TestDepositAmount(t *testing.T) {
	cases := []struct {
		tier    entities.BudgetTier
		percent int
		want    float64
	}{
		{entities.BudgetTier1000To3000, 50, 1250},
		{entities.BudgetTier3000To6000, 30, 1350},
		{entities.BudgetTier10000Plus, 100, 12000},
		{"", 50, 0},
	}
	for _, tc := range cases {
		if got := DepositAmount(tc.tier, tc.percent); got != tc.want {
			t.Fatalf("DepositAmount(%q, %d) = %v, want %v", tc.tier, tc.percent, got, tc.want)
		}
	}
}

func TestDepositAmount_NeverExceedsBudget(t *testing.T) {
	properties := gopter.NewProperties(nil)
	properties.Property("deposit within [0, budget]", prop.ForAll(
		func(i int, percent int) bool {
			tier := entities.BudgetTiers()[i]
			got := DepositAmount(tier, percent)
			return got >= 0 && got <= entities.BudgetAmount(tier)
		},
		gen.IntRange(0, len(entities.BudgetTiers())-1),
		gen.IntRange(0, 100),
	))
	properties.TestingRun(t)
}

func TestDepositPaymentUseCase_CreateDeposit(t *testing.T) {
	accepted := storedProposal(entities.ProposalStatusAccepted)

	t.Run("enriches payload from the proposal", func(t *testing.T) {
		uc, m := newDepositUC(t, false)
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(accepted, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var body map[string]any
				if err := json.Unmarshal(payload, &body); err != nil {
					t.Fatalf("payload not json: %v", err)
				}
				if body["transaction_amount"] != float64(1250) {
					t.Fatalf("expected amount 1250, got %v", body["transaction_amount"])
				}
				if body["external_reference"] != "p-1" {
					t.Fatalf("unexpected external_reference %v", body["external_reference"])
				}
				payer := body["payer"].(map[string]any)
				if payer["email"] != "a@acme.com" {
					t.Fatalf("expected client email as payer, got %v", payer["email"])
				}
				return "123", "approved", json.RawMessage(`{"id":123,"status":"approved"}`), nil
			})
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.DepositPayment) (entities.DepositPayment, error) { return d, nil })

		d, err := uc.CreateDeposit(context.Background(), "p-1", json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ID != "123" || d.Status != entities.PaymentStatusAprovado || d.Amount != 1250 || !d.Date.Equal(fixedNow) {
			t.Fatalf("unexpected deposit: %+v", d)
		}
		if d.MPPayload["status"] != "approved" {
			t.Fatalf("expected parsed provider payload, got %v", d.MPPayload)
		}
	})

	t.Run("proposal must be accepted", func(t *testing.T) {
		uc, m := newDepositUC(t, false)
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(storedProposal(entities.ProposalStatusSent), nil)

		_, err := uc.CreateDeposit(context.Background(), "p-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrProposalNotAccepted) {
			t.Fatalf("expected ErrProposalNotAccepted, got %v", err)
		}
	})

	t.Run("no budget", func(t *testing.T) {
		uc, m := newDepositUC(t, false)
		p := accepted
		p.BudgetTier = ""
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(p, nil)

		_, err := uc.CreateDeposit(context.Background(), "p-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrDepositUnavailable) {
			t.Fatalf("expected ErrDepositUnavailable, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc, _ := newDepositUC(t, false)
		for _, payload := range []string{``, `{`, `{"a":`} {
			_, err := uc.CreateDeposit(context.Background(), "p-1", json.RawMessage(payload))
			if !errors.Is(err, ErrInvalidMPPayload) {
				t.Fatalf("payload %q: expected ErrInvalidMPPayload, got %v", payload, err)
			}
		}
	})

	t.Run("missing payment method", func(t *testing.T) {
		uc, m := newDepositUC(t, false)
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(accepted, nil)

		_, err := uc.CreateDeposit(context.Background(), "p-1", json.RawMessage(`{"payer":{"email":"x@y.com"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("mock mode accepts an empty payload", func(t *testing.T) {
		uc, m := newDepositUC(t, true)
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(accepted, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("1", "approved", json.RawMessage(`{}`), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.DepositPayment) (entities.DepositPayment, error) { return d, nil })

		if _, err := uc.CreateDeposit(context.Background(), "p-1", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway errors are classified", func(t *testing.T) {
		uc, m := newDepositUC(t, false)
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(accepted, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New(`{"message":"unauthorized","error":"unauthorized","status":401}`))

		_, err := uc.CreateDeposit(context.Background(), "p-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		uc, m := newDepositUC(t, false)
		m.proposals.EXPECT().GetByID(gomock.Any(), "p-1").Return(accepted, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("9", "in_process", json.RawMessage(`{}`), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.DepositPayment{}, errors.New("throttled"))

		_, err := uc.CreateDeposit(context.Background(), "p-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrPersistence) {
			t.Fatalf("expected ErrPersistence, got %v", err)
		}
	})
}

func TestDepositPaymentUseCase_LatestByProposal(t *testing.T) {
	uc, m := newDepositUC(t, false)

	m.repo.EXPECT().ListByProposalID(gomock.Any(), "p-1").Return([]entities.DepositPayment{
		{ID: "a", Date: fixedNow.Add(-2 * time.Hour)},
		{ID: "b", Date: fixedNow},
		{ID: "c", Date: fixedNow.Add(-time.Hour)},
	}, nil)
	d, err := uc.LatestByProposal(context.Background(), "p-1")
	if err != nil || d.ID != "b" {
		t.Fatalf("expected latest deposit b, got %+v err=%v", d, err)
	}

	m.repo.EXPECT().ListByProposalID(gomock.Any(), "p-2").Return(nil, nil)
	if _, err := uc.LatestByProposal(context.Background(), "p-2"); !errors.Is(err, ErrDepositNotFound) {
		t.Fatalf("expected ErrDepositNotFound, got %v", err)
	}
}
