// Package companyrepo implements carrier company persistence with GORM.
package companyrepo

import (
	"strings"

	"freight/internal/core/domain/model/company"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CompanyDTO represents the database structure for persisting company
// aggregates. Admin emails are stored comma-joined.
type CompanyDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Address     string
	AdminEmails string
}

// TableName specifies the database table name for company entities.
func (CompanyDTO) TableName() string {
	return "companies"
}

func fromDomain(aggregate *company.Company) CompanyDTO {
	return CompanyDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Address:     aggregate.Address(),
		AdminEmails: strings.Join(aggregate.AdminEmails(), ","),
	}
}

func toDomain(dto CompanyDTO) (*company.Company, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return company.RestoreCompany(id, dto.Name, dto.Address, strings.Split(dto.AdminEmails, ","))
}
