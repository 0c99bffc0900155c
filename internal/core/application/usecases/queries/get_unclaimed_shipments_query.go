// Package queries contains read-side operations. Query handlers bypass the
// domain model and read directly from the database, per the CQRS split.
package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetUnclaimedShipmentsQueryIsNotConstructed = errors.New(
	"GetUnclaimedShipmentsQuery must be created via NewGetUnclaimedShipmentsQuery constructor",
)

// GetUnclaimedShipmentsQuery retrieves every shipment still open for offers.
// Carriers browse this list to decide what to bid on.
type GetUnclaimedShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnclaimedShipmentsQuery creates a query for the open-for-offers board.
func NewGetUnclaimedShipmentsQuery() GetUnclaimedShipmentsQuery {
	return GetUnclaimedShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnclaimedShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnclaimedShipmentsQueryIsNotConstructed)
}

// GetUnclaimedShipmentsQueryResponse is the read model for one open shipment.
type GetUnclaimedShipmentsQueryResponse struct {
	ID              kernel.UUID
	Name            string
	SenderAddress   string
	ReceiverAddress string
}
