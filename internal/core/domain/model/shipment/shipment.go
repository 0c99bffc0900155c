// Package shipment models customer freight from creation through delivery.
package shipment

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment was not created
	// via NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrNameIsRequired is returned when creating a shipment without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrSenderAddressIsRequired is returned when the sender address is empty.
	ErrSenderAddressIsRequired = errs.NewValueIsRequiredError("senderAddress")

	// ErrReceiverAddressIsRequired is returned when the receiver address is empty.
	ErrReceiverAddressIsRequired = errs.NewValueIsRequiredError("receiverAddress")

	// ErrShipmentIsClaimed is returned when destroying a shipment that has been claimed.
	ErrShipmentIsClaimed = errs.NewValueIsInvalidError("claimed shipments cannot be destroyed")
)

// Shipment is the aggregate root for a customer's freight. It is owned by the
// creating customer and, once an offer is accepted, bound to the carrier company.
//
// Invariants:
//   - companyID is nil exactly while the shipment is Unclaimed
//   - a claimed shipment can never be destroyed
//   - status transitions follow the Status state machine
type Shipment struct {
	id              kernel.UUID
	ownerID         kernel.UUID
	companyID       *kernel.UUID
	name            string
	senderAddress   string
	receiverAddress string
	status          Status

	guard guard.ConstructorGuard
}

// NewShipment creates a shipment in Unclaimed state for the owning customer.
func NewShipment(id, ownerID kernel.UUID, name, senderAddress, receiverAddress string) (*Shipment, error) {
	s := &Shipment{
		status: StatusUnclaimed,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setOwnerID(ownerID),
		s.setName(name),
		s.setAddresses(senderAddress, receiverAddress),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence, including its
// status and company binding.
func RestoreShipment(
	id, ownerID kernel.UUID,
	companyID *kernel.UUID,
	name, senderAddress, receiverAddress string,
	status Status,
) (*Shipment, error) {
	s, err := NewShipment(id, ownerID, name, senderAddress, receiverAddress)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if companyID != nil {
		if err = companyID.Validate(); err != nil {
			return nil, err
		}
	}

	s.status = status
	s.companyID = companyID
	return s, nil
}

// Claim binds the shipment to the company whose offer was accepted and
// transitions Unclaimed→Claimed.
func (s *Shipment) Claim(companyID kernel.UUID) error {
	if err := companyID.Validate(); err != nil {
		return err
	}

	newStatus, err := s.status.Claim()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.companyID = &companyID
	return nil
}

// Assign transitions Claimed→Assigned when the shipment is put on a truck.
func (s *Shipment) Assign() error {
	newStatus, err := s.status.Assign()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// MarkDelivered transitions Assigned→Delivered when the delivery closes.
func (s *Shipment) MarkDelivered() error {
	newStatus, err := s.status.Deliver()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// Copy clones the shipment as a fresh Unclaimed shipment with a new identifier.
// The copy keeps the descriptive fields and the owner but drops the company
// binding and status; mutating the copy never affects the original.
func (s *Shipment) Copy(newID kernel.UUID) (*Shipment, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return NewShipment(newID, s.ownerID, s.name, s.senderAddress, s.receiverAddress)
}

// EnsureDestroyable returns an error unless the shipment is still unclaimed.
func (s *Shipment) EnsureDestroyable() error {
	if s.IsClaimed() {
		return ErrShipmentIsClaimed
	}
	return nil
}

// ID returns the shipment's identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// OwnerID returns the owning customer's identifier.
func (s *Shipment) OwnerID() kernel.UUID {
	return s.ownerID
}

// CompanyID returns the carrier company, or nil while unclaimed.
func (s *Shipment) CompanyID() *kernel.UUID {
	return s.companyID
}

// Name returns the shipment's descriptive name.
func (s *Shipment) Name() string {
	return s.name
}

// SenderAddress returns the pickup address.
func (s *Shipment) SenderAddress() string {
	return s.senderAddress
}

// ReceiverAddress returns the drop-off address.
func (s *Shipment) ReceiverAddress() string {
	return s.receiverAddress
}

// Status returns the current lifecycle state.
func (s *Shipment) Status() Status {
	return s.status
}

// IsClaimed reports whether an offer has been accepted for this shipment.
func (s *Shipment) IsClaimed() bool {
	return s.status != StatusUnclaimed
}

// IsEqual compares shipments by identifier.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// Validate ensures the shipment was created via a constructor.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	s.ownerID = ownerID
	return nil
}

func (s *Shipment) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}

func (s *Shipment) setAddresses(sender, receiver string) error {
	if sender == "" {
		return ErrSenderAddressIsRequired
	}
	if receiver == "" {
		return ErrReceiverAddressIsRequired
	}
	s.senderAddress = sender
	s.receiverAddress = receiver
	return nil
}
