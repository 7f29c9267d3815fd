package interfaces

import (
	"context"

	"proposalcraft/internal/domain/entities"
)

// IDepositPaymentRepository abstracts DynamoDB persistence for DepositPayment.
type IDepositPaymentRepository interface {
	Create(ctx context.Context, p entities.DepositPayment) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByProposalID(ctx context.Context, proposalID string) ([]entities.DepositPayment, error)
}
