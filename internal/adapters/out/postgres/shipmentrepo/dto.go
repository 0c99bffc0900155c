// Package shipmentrepo implements shipment persistence with GORM, mapping
// between the shipment aggregate and its database representation.
package shipmentrepo

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Status is indexed because the offer board and the concurrency
// guard both filter on it.
type ShipmentDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID         uuid.UUID  `gorm:"type:uuid;index"`
	CompanyID       *uuid.UUID `gorm:"type:uuid;index"`
	Name            string
	SenderAddress   string
	ReceiverAddress string
	Status          int `gorm:"index"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var companyID *uuid.UUID
	if id := aggregate.CompanyID(); id != nil {
		raw := id.Bytes()
		companyID = &raw
	}

	return ShipmentDTO{
		ID:              aggregate.ID().Bytes(),
		OwnerID:         aggregate.OwnerID().Bytes(),
		CompanyID:       companyID,
		Name:            aggregate.Name(),
		SenderAddress:   aggregate.SenderAddress(),
		ReceiverAddress: aggregate.ReceiverAddress(),
		Status:          int(aggregate.Status()),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	var companyID *kernel.UUID
	if dto.CompanyID != nil {
		cID, companyErr := kernel.UUIDFromBytes((*dto.CompanyID)[:])
		if companyErr != nil {
			return nil, companyErr
		}

		companyID = &cID
	}

	return shipment.RestoreShipment(
		id, ownerID, companyID,
		dto.Name, dto.SenderAddress, dto.ReceiverAddress,
		shipment.Status(dto.Status),
	)
}
