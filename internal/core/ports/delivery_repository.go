package ports

import (
	"context"

	"freight/internal/core/domain/model/delivery"
	"freight/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery runs and
// their legs.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate, including all of its legs.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier, with legs.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetLegs retrieves the legs with the given identifiers. Legs that no
	// longer exist are omitted from the result rather than reported as errors,
	// so background work scheduled against deleted runs degrades silently.
	GetLegs(ctx context.Context, legIDs []kernel.UUID) ([]*delivery.Leg, error)

	// UpdateLeg persists changes to a single leg, typically its geocoded
	// coordinates.
	UpdateLeg(ctx context.Context, leg *delivery.Leg) error
}
