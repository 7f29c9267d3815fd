package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"proposalcraft/internal/domain/entities"
	"proposalcraft/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepositPaymentDynamoRepository(t *testing.T) {
	ddb := newFakeDynamoDB("id")
	repo := NewDepositPaymentDynamoRepository(ddb, "deposit_payments")
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	d := entities.DepositPayment{
		ID:           "123",
		ProposalID:   "p-1",
		Amount:       1250.5,
		Date:         date,
		Status:       entities.PaymentStatusAprovado,
		MPPayloadRaw: json.RawMessage(`{"status":"approved"}`),
		MPPayload:    map[string]interface{}{"status": "approved"},
	}
	_, err := repo.Create(ctx, d)
	require.NoError(t, err)

	_, err = repo.Create(ctx, d)
	assert.ErrorIs(t, err, interfaces.ErrConditionFailed)

	got, err := repo.GetByID(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, 1250.5, got.Amount)
	assert.Equal(t, entities.PaymentStatusAprovado, got.Status)
	assert.True(t, got.Date.Equal(date))
	assert.JSONEq(t, `{"status":"approved"}`, string(got.MPPayloadRaw))
	assert.Equal(t, "approved", got.MPPayload["status"])

	_, err = repo.Create(ctx, entities.DepositPayment{ID: "124", ProposalID: "p-2", Date: date})
	require.NoError(t, err)

	list, err := repo.ListByProposalID(ctx, "p-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "123", list[0].ID)
}

func TestCompanySettingsDynamoRepository(t *testing.T) {
	ddb := newFakeDynamoDB("owner_id")
	repo := NewCompanySettingsDynamoRepository(ddb, "company_settings")
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	missing, err := repo.GetByOwnerID(ctx, "u-1")
	require.NoError(t, err)
	assert.Empty(t, missing.OwnerID)

	s := entities.CompanySettings{OwnerID: "u-1", CompanyName: "Studio", PrimaryColor: "#123456", CreatedAt: now, UpdatedAt: now}
	_, err = repo.Upsert(ctx, s)
	require.NoError(t, err)

	s.CompanyName = "Studio 2"
	_, err = repo.Upsert(ctx, s)
	require.NoError(t, err)

	got, err := repo.GetByOwnerID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "Studio 2", got.CompanyName)
	assert.Equal(t, "#123456", got.PrimaryColor)
	assert.True(t, got.CreatedAt.Equal(now))
}
