// Package offerrepo implements offer persistence with GORM.
package offerrepo

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/offer"

	"github.com/google/uuid"
)

// OfferDTO represents the database structure for persisting offer aggregates.
type OfferDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;index"`
	CompanyID  uuid.UUID `gorm:"type:uuid;index"`
	Price      int64
	Notes      string
	Status     int
}

// TableName specifies the database table name for offer entities.
func (OfferDTO) TableName() string {
	return "offers"
}

func fromDomain(aggregate *offer.Offer) OfferDTO {
	return OfferDTO{
		ID:         aggregate.ID().Bytes(),
		ShipmentID: aggregate.ShipmentID().Bytes(),
		CompanyID:  aggregate.CompanyID().Bytes(),
		Price:      aggregate.Price(),
		Notes:      aggregate.Notes(),
		Status:     int(aggregate.Status()),
	}
}

func toDomain(dto OfferDTO) (*offer.Offer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	return offer.RestoreOffer(id, shipmentID, companyID, dto.Price, dto.Notes, offer.Status(dto.Status))
}
