// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"database/sql"
	"time"

	"zapshift/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParcelResponse represents a parcel in the read model. Statuses are the
// wire strings, and rider and cashout fields are nil until set.
type ParcelResponse struct {
	ID             kernel.UUID
	TrackingCode   string
	SenderEmail    string
	ReceiverName   string
	ReceiverAddr   string
	WeightGrams    int
	CostAmount     int64
	PaymentStatus  string
	DeliveryStatus string
	RiderID        *kernel.UUID
	RiderEmail     *string
	RiderName      *string
	CashoutStatus  string
	CashoutAmount  int64
	CashoutAt      *time.Time
	CreatedAt      time.Time
}

const parcelSelectColumns = `
	id,
	tracking_code,
	sender_email,
	receiver_name,
	receiver_address,
	weight_grams,
	cost_amount,
	payment_status,
	delivery_status,
	rider_id,
	rider_email,
	rider_name,
	cashout_status,
	cashout_amount,
	cashout_at,
	created_at
`

func scanParcelRow(rows *sql.Rows) (ParcelResponse, error) {
	var (
		response  ParcelResponse
		id        uuid.UUID
		riderID   uuid.NullUUID
		riderMail sql.NullString
		riderName sql.NullString
		cashoutAt sql.NullTime
	)

	if err := rows.Scan(
		&id,
		&response.TrackingCode,
		&response.SenderEmail,
		&response.ReceiverName,
		&response.ReceiverAddr,
		&response.WeightGrams,
		&response.CostAmount,
		&response.PaymentStatus,
		&response.DeliveryStatus,
		&riderID,
		&riderMail,
		&riderName,
		&response.CashoutStatus,
		&response.CashoutAmount,
		&cashoutAt,
		&response.CreatedAt,
	); err != nil {
		return ParcelResponse{}, err
	}

	parcelID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ParcelResponse{}, err
	}
	response.ID = parcelID

	if riderID.Valid {
		assignedID, idErr := kernel.UUIDFromBytes(riderID.UUID[:])
		if idErr != nil {
			return ParcelResponse{}, idErr
		}
		response.RiderID = &assignedID
	}
	if riderMail.Valid {
		response.RiderEmail = &riderMail.String
	}
	if riderName.Valid {
		response.RiderName = &riderName.String
	}
	if cashoutAt.Valid {
		at := cashoutAt.Time
		response.CashoutAt = &at
	}

	return response, nil
}

func collectParcels(rows *sql.Rows) ([]ParcelResponse, error) {
	parcels := make([]ParcelResponse, 0)

	for rows.Next() {
		response, err := scanParcelRow(rows)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, response)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}

func queryParcels(db *gorm.DB, sql string, args ...any) ([]ParcelResponse, error) {
	rows, err := db.Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectParcels(rows)
}
