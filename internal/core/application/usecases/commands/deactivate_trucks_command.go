package commands

import (
	"errors"

	"freight/internal/pkg/guard"
)

var ErrDeactivateTrucksCommandIsNotConstructed = errors.New(
	"DeactivateTrucksCommand must be created via NewDeactivateTrucksCommand constructor",
)

// DeactivateTrucksCommand triggers the maintenance sweep. It carries no data:
// the sweep operates on every active truck whose maintenance is overdue.
type DeactivateTrucksCommand struct {
	guard guard.ConstructorGuard
}

// NewDeactivateTrucksCommand creates a maintenance sweep command.
func NewDeactivateTrucksCommand() DeactivateTrucksCommand {
	return DeactivateTrucksCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c DeactivateTrucksCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateTrucksCommandIsNotConstructed)
}
