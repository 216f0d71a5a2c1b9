// Package riderrepo provides data transfer objects and mapping functions
// for rider persistence.
package riderrepo

import (
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO represents the database structure for persisting rider
// aggregates.
type RiderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone     string    `gorm:"type:varchar(32)"`
	District  string    `gorm:"type:varchar(128)"`
	Status    string    `gorm:"type:varchar(16);not null;index"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null"`
}

// TableName overrides GORM's default naming to use "riders".
func (RiderDTO) TableName() string {
	return "riders"
}

func fromDomain(aggregate *rider.Rider) RiderDTO {
	return RiderDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Email:     aggregate.Email(),
		Phone:     aggregate.Phone(),
		District:  aggregate.District(),
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := rider.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return rider.RestoreRider(id, dto.Name, dto.Email, dto.Phone, dto.District, status, dto.CreatedAt)
}
