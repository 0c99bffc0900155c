// Package truckrepo implements truck persistence with GORM.
package truckrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"

	"github.com/google/uuid"
)

// TruckDTO represents the database structure for persisting truck aggregates.
// Active is indexed for the maintenance sweep and the fleet query.
type TruckDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID        uuid.UUID `gorm:"type:uuid;index"`
	Plate            string
	Active           bool `gorm:"index"`
	MaintenanceDueAt time.Time
}

// TableName specifies the database table name for truck entities.
func (TruckDTO) TableName() string {
	return "trucks"
}

func fromDomain(aggregate *truck.Truck) TruckDTO {
	return TruckDTO{
		ID:               aggregate.ID().Bytes(),
		CompanyID:        aggregate.CompanyID().Bytes(),
		Plate:            aggregate.Plate(),
		Active:           aggregate.IsActive(),
		MaintenanceDueAt: aggregate.MaintenanceDueAt(),
	}
}

func toDomain(dto TruckDTO) (*truck.Truck, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	return truck.RestoreTruck(id, companyID, dto.Plate, dto.Active, dto.MaintenanceDueAt)
}
