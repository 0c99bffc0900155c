package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveTrucksQueryHandler reads a company's dispatchable fleet straight
// from the trucks table.
type GetActiveTrucksQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveTrucksQueryHandler creates a handler for the fleet query.
func NewGetActiveTrucksQueryHandler(db *gorm.DB) GetActiveTrucksQueryHandler {
	return GetActiveTrucksQueryHandler{db: db}
}

// Handle executes the query. Trucks closest to their maintenance deadline come
// first so dispatchers can prioritize them.
func (h GetActiveTrucksQueryHandler) Handle(
	ctx context.Context,
	query GetActiveTrucksQuery,
) ([]GetActiveTrucksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	trucks := make([]GetActiveTrucksQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			plate,
			maintenance_due_at
		FROM trucks
		WHERE company_id = ? AND active
		ORDER BY maintenance_due_at, id
	`, query.CompanyID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveTrucksQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Plate,
			&resp.MaintenanceDueAt,
		)
		if err != nil {
			return nil, err
		}

		truckID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = truckID

		trucks = append(trucks, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return trucks, nil
}
