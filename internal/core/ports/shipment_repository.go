// Package ports defines the contracts between the freight domain and
// infrastructure: repositories, the unit of work, and the outbound gateways
// for geocoding and notifications.
package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// UpdateInStatus persists the aggregate only if its stored status still
	// equals expected. Returns errs.ErrConcurrentConflict when another
	// transaction moved the shipment out of the expected status first.
	// This is the compare-and-swap guarding concurrent offer acceptance.
	UpdateInStatus(ctx context.Context, aggregate *shipment.Shipment, expected shipment.Status) error

	// Get retrieves a shipment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// Delete removes an unclaimed shipment from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
