// Package parcelrepo provides data transfer objects and mapping functions
// for parcel persistence.
package parcelrepo

import (
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. Statuses are stored as their wire strings and rider and
// cashout fields stay NULL until set.
type ParcelDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingCode    string     `gorm:"type:varchar(32);not null;uniqueIndex"`
	SenderEmail     string     `gorm:"type:varchar(255);not null;index"`
	ReceiverName    string     `gorm:"type:varchar(255);not null"`
	ReceiverAddress string     `gorm:"type:varchar(512);not null"`
	WeightGrams     int        `gorm:"type:int;not null"`
	CostAmount      int64      `gorm:"type:bigint;not null"`
	PaymentStatus   string     `gorm:"type:varchar(16);not null"`
	DeliveryStatus  string     `gorm:"type:varchar(32);not null"`
	RiderID         *uuid.UUID `gorm:"type:uuid;index"`
	RiderEmail      *string    `gorm:"type:varchar(255)"`
	RiderName       *string    `gorm:"type:varchar(255)"`
	CashoutStatus   string     `gorm:"type:varchar(16);not null"`
	CashoutAmount   int64      `gorm:"type:bigint;not null"`
	CashoutAt       *time.Time `gorm:"type:timestamptz"`
	CreatedAt       time.Time  `gorm:"type:timestamptz;not null;index"`
}

// TableName overrides GORM's default naming to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	dto := ParcelDTO{
		ID:              aggregate.ID().Bytes(),
		TrackingCode:    aggregate.TrackingCode().String(),
		SenderEmail:     aggregate.SenderEmail(),
		ReceiverName:    aggregate.ReceiverName(),
		ReceiverAddress: aggregate.ReceiverAddress(),
		WeightGrams:     aggregate.WeightGrams(),
		CostAmount:      aggregate.CostAmount(),
		PaymentStatus:   aggregate.PaymentStatus().String(),
		DeliveryStatus:  aggregate.DeliveryStatus().String(),
		CashoutStatus:   aggregate.CashoutStatus().String(),
		CashoutAmount:   aggregate.CashoutAmount(),
		CashoutAt:       aggregate.CashoutAt(),
		CreatedAt:       aggregate.CreatedAt(),
	}

	if assignment := aggregate.Rider(); assignment != nil {
		riderID := assignment.RiderID.Bytes()
		riderEmail := assignment.Email
		riderName := assignment.Name
		dto.RiderID = &riderID
		dto.RiderEmail = &riderEmail
		dto.RiderName = &riderName
	}

	return dto
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingCode, err := kernel.TrackingCodeFromString(dto.TrackingCode)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := parcel.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	deliveryStatus, err := parcel.DeliveryStatusFromString(dto.DeliveryStatus)
	if err != nil {
		return nil, err
	}

	cashoutStatus, err := parcel.CashoutStatusFromString(dto.CashoutStatus)
	if err != nil {
		return nil, err
	}

	var assignment *parcel.RiderAssignment
	if dto.RiderID != nil {
		riderID, idErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if idErr != nil {
			return nil, idErr
		}

		assignment = &parcel.RiderAssignment{RiderID: riderID}
		if dto.RiderEmail != nil {
			assignment.Email = *dto.RiderEmail
		}
		if dto.RiderName != nil {
			assignment.Name = *dto.RiderName
		}
	}

	return parcel.RestoreParcel(
		id,
		trackingCode,
		dto.SenderEmail,
		dto.ReceiverName,
		dto.ReceiverAddress,
		dto.WeightGrams,
		dto.CostAmount,
		paymentStatus,
		deliveryStatus,
		assignment,
		cashoutStatus,
		dto.CashoutAmount,
		dto.CashoutAt,
		dto.CreatedAt,
	)
}
