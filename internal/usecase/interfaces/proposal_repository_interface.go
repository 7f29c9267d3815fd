package interfaces

import (
	"context"
	"errors"

	"proposalcraft/internal/domain/entities"
)

// ErrConditionFailed is returned by repositories when a conditional write
// lost against a concurrent writer.
var ErrConditionFailed = errors.New("conditional write failed")

// IProposalRepository abstracts DynamoDB persistence for Proposal.
//
// Reads return a zero-value Proposal when the id does not exist.
// Update replaces the stored proposal only while it still has expectedVersion
// and expectedStatus, and bumps Version; otherwise it returns ErrConditionFailed.
type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Proposal, error)
	Update(ctx context.Context, p entities.Proposal, expectedVersion int64, expectedStatus entities.ProposalStatus) (entities.Proposal, error)
}
