package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrGeocodeCommandIsNotConstructed = errors.New(
		"GeocodeDeliveryShipmentsCommand must be created via NewGeocodeDeliveryShipmentsCommand constructor",
	)
	ErrLegIDsAreRequired = errs.NewValueIsRequiredError("legIDs")
)

// GeocodeDeliveryShipmentsCommand carries one batch of delivery legs whose
// addresses need resolving to coordinates.
type GeocodeDeliveryShipmentsCommand struct { //nolint:recvcheck //using for validation
	legIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewGeocodeDeliveryShipmentsCommand creates a command to geocode the given legs.
func NewGeocodeDeliveryShipmentsCommand(legIDs []kernel.UUID) (GeocodeDeliveryShipmentsCommand, error) {
	command := GeocodeDeliveryShipmentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setLegIDs(legIDs); err != nil {
		return GeocodeDeliveryShipmentsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c GeocodeDeliveryShipmentsCommand) Validate() error {
	return c.guard.Validate(ErrGeocodeCommandIsNotConstructed)
}

// LegIDs returns the legs in this batch.
func (c GeocodeDeliveryShipmentsCommand) LegIDs() []kernel.UUID {
	return c.legIDs
}

func (c *GeocodeDeliveryShipmentsCommand) setLegIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return ErrLegIDsAreRequired
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.legIDs = ids
	return nil
}
