// Package userrepo provides data transfer objects and mapping functions
// for user persistence.
package userrepo

import (
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user accounts.
// Email is the lookup key used by sign-in and authorization.
type UserDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email       string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	DisplayName string    `gorm:"type:varchar(255)"`
	Role        string    `gorm:"type:varchar(16);not null"`
	CreatedAt   time.Time `gorm:"type:timestamptz;not null"`
	LastLoginAt time.Time `gorm:"type:timestamptz;not null"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:          aggregate.ID().Bytes(),
		Email:       aggregate.Email(),
		DisplayName: aggregate.DisplayName(),
		Role:        aggregate.Role().String(),
		CreatedAt:   aggregate.CreatedAt(),
		LastLoginAt: aggregate.LastLoginAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Email, dto.DisplayName, role, dto.CreatedAt, dto.LastLoginAt)
}
