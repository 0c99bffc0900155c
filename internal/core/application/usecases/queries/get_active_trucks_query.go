package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetActiveTrucksQueryIsNotConstructed = errors.New(
	"GetActiveTrucksQuery must be created via NewGetActiveTrucksQuery constructor",
)

// GetActiveTrucksQuery retrieves a company's trucks that are available for
// dispatch, i.e. not deactivated by the maintenance sweep.
type GetActiveTrucksQuery struct { //nolint:recvcheck //using for validation
	companyID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveTrucksQuery creates a query for the given company's active fleet.
func NewGetActiveTrucksQuery(companyID kernel.UUID) (GetActiveTrucksQuery, error) {
	query := GetActiveTrucksQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCompanyID(companyID); err != nil {
		return GetActiveTrucksQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveTrucksQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveTrucksQueryIsNotConstructed)
}

// CompanyID returns the company whose fleet is queried.
func (q GetActiveTrucksQuery) CompanyID() kernel.UUID {
	return q.companyID
}

func (q *GetActiveTrucksQuery) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.companyID = id
	return nil
}

// GetActiveTrucksQueryResponse is the read model for one dispatchable truck.
type GetActiveTrucksQueryResponse struct {
	ID               kernel.UUID
	Plate            string
	MaintenanceDueAt time.Time
}
