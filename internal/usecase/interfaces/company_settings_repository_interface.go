package interfaces

import (
	"context"

	"proposalcraft/internal/domain/entities"
)

// ICompanySettingsRepository persists one CompanySettings record per owner.
type ICompanySettingsRepository interface {
	GetByOwnerID(ctx context.Context, ownerID string) (entities.CompanySettings, error)
	Upsert(ctx context.Context, s entities.CompanySettings) (entities.CompanySettings, error)
}
