// Package deliveryrepo implements delivery run persistence with GORM. A run
// maps to one row in deliveries plus one row per leg in delivery_shipments.
package deliveryrepo

import (
	"freight/internal/core/domain/model/delivery"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery runs.
type DeliveryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TruckID   uuid.UUID `gorm:"type:uuid;index"`
	CompanyID uuid.UUID `gorm:"type:uuid;index"`
	Status    int
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// LegDTO represents one shipment's passage on a delivery run. Coordinates are
// nullable: they stay NULL until the geocoding pipeline resolves the address,
// and forever for addresses that cannot be resolved.
type LegDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryID      uuid.UUID `gorm:"type:uuid;index"`
	ShipmentID      uuid.UUID `gorm:"type:uuid;index"`
	SenderAddress   string
	ReceiverAddress string
	SenderLat       *float64
	SenderLng       *float64
	ReceiverLat     *float64
	ReceiverLng     *float64
}

// TableName specifies the database table name for leg entities.
func (LegDTO) TableName() string {
	return "delivery_shipments"
}

func fromDomain(aggregate *delivery.Delivery) (DeliveryDTO, []LegDTO) {
	dto := DeliveryDTO{
		ID:        aggregate.ID().Bytes(),
		TruckID:   aggregate.TruckID().Bytes(),
		CompanyID: aggregate.CompanyID().Bytes(),
		Status:    int(aggregate.Status()),
	}

	legs := make([]LegDTO, 0, len(aggregate.Legs()))
	for _, leg := range aggregate.Legs() {
		legs = append(legs, legFromDomain(aggregate.ID(), leg))
	}

	return dto, legs
}

func legFromDomain(deliveryID kernel.UUID, leg *delivery.Leg) LegDTO {
	dto := LegDTO{
		ID:              leg.ID().Bytes(),
		DeliveryID:      deliveryID.Bytes(),
		ShipmentID:      leg.ShipmentID().Bytes(),
		SenderAddress:   leg.SenderAddress(),
		ReceiverAddress: leg.ReceiverAddress(),
	}

	if p := leg.SenderPoint(); p != nil {
		lat, lng := p.Latitude(), p.Longitude()
		dto.SenderLat, dto.SenderLng = &lat, &lng
	}
	if p := leg.ReceiverPoint(); p != nil {
		lat, lng := p.Latitude(), p.Longitude()
		dto.ReceiverLat, dto.ReceiverLng = &lat, &lng
	}

	return dto
}

func toDomain(dto DeliveryDTO, legDTOs []LegDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	truckID, err := kernel.UUIDFromBytes(dto.TruckID[:])
	if err != nil {
		return nil, err
	}

	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	legs := make([]*delivery.Leg, 0, len(legDTOs))
	for _, legDTO := range legDTOs {
		leg, legErr := legToDomain(legDTO)
		if legErr != nil {
			return nil, legErr
		}
		legs = append(legs, leg)
	}

	return delivery.RestoreDelivery(id, truckID, companyID, delivery.Status(dto.Status), legs)
}

func legToDomain(dto LegDTO) (*delivery.Leg, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	senderPoint, err := pointFromColumns(dto.SenderLat, dto.SenderLng)
	if err != nil {
		return nil, err
	}

	receiverPoint, err := pointFromColumns(dto.ReceiverLat, dto.ReceiverLng)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreLeg(id, shipmentID, dto.SenderAddress, dto.ReceiverAddress, senderPoint, receiverPoint)
}

func pointFromColumns(lat, lng *float64) (*kernel.GeoPoint, error) {
	if lat == nil || lng == nil {
		return nil, nil
	}

	point, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &point, nil
}
