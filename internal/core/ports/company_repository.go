package ports

import (
	"context"

	"freight/internal/core/domain/model/company"
	"freight/internal/core/domain/model/kernel"
)

// CompanyRepository defines the persistence contract for carrier companies.
type CompanyRepository interface {
	// Add persists a new company aggregate to storage.
	Add(ctx context.Context, aggregate *company.Company) error

	// Update persists changes to an existing company aggregate.
	Update(ctx context.Context, aggregate *company.Company) error

	// Get retrieves a company aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*company.Company, error)
}
