package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnclaimedShipmentsQueryHandler reads the open-for-offers board straight
// from the shipments table.
type GetUnclaimedShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetUnclaimedShipmentsQueryHandler creates a handler for the board query.
func NewGetUnclaimedShipmentsQueryHandler(db *gorm.DB) GetUnclaimedShipmentsQueryHandler {
	return GetUnclaimedShipmentsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by ID for stable paging.
func (h GetUnclaimedShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetUnclaimedShipmentsQuery,
) ([]GetUnclaimedShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetUnclaimedShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			sender_address,
			receiver_address
		FROM shipments
		WHERE status = ?
		ORDER BY id
	`, shipment.StatusUnclaimed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUnclaimedShipmentsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.SenderAddress,
			&resp.ReceiverAddress,
		)
		if err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = shipmentID

		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
