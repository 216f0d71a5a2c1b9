package http

import (
	"time"

	"zapshift/internal/core/application/usecases/queries"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/core/domain/model/payment"
	"zapshift/internal/core/domain/model/rider"
	"zapshift/internal/core/domain/model/user"
	"zapshift/internal/core/ports"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type LoginRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type CreateParcelRequest struct {
	SenderEmail     string `json:"senderEmail"`
	ReceiverName    string `json:"receiverName"`
	ReceiverAddress string `json:"receiverAddress"`
	WeightGrams     int    `json:"weightGrams"`
	CostAmount      int64  `json:"costAmount"`
}

type ParcelResponse struct {
	ID              string     `json:"id"`
	TrackingCode    string     `json:"trackingCode"`
	SenderEmail     string     `json:"senderEmail"`
	ReceiverName    string     `json:"receiverName"`
	ReceiverAddress string     `json:"receiverAddress"`
	WeightGrams     int        `json:"weightGrams"`
	CostAmount      int64      `json:"costAmount"`
	PaymentStatus   string     `json:"paymentStatus"`
	DeliveryStatus  string     `json:"deliveryStatus"`
	RiderID         *string    `json:"riderId,omitempty"`
	RiderEmail      *string    `json:"riderEmail,omitempty"`
	RiderName       *string    `json:"riderName,omitempty"`
	CashoutStatus   string     `json:"cashoutStatus"`
	CashoutAmount   int64      `json:"cashoutAmount"`
	CashoutAt       *time.Time `json:"cashoutAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type TrackParcelResponse struct {
	TrackingCode   string    `json:"trackingCode"`
	DeliveryStatus string    `json:"deliveryStatus"`
	ReceiverName   string    `json:"receiverName"`
	RiderName      *string   `json:"riderName,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type UpdateParcelStatusRequest struct {
	Status string `json:"status"`
}

type AssignRiderRequest struct {
	RiderID string `json:"riderId"`
}

type CashoutRequest struct {
	Amount int64 `json:"amount"`
}

type CreateRiderRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	District string `json:"district"`
}

type RiderResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	District  string    `json:"district"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type SetRiderStatusRequest struct {
	Status string `json:"status"`
}

type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	LastLoginAt time.Time `json:"lastLoginAt"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role"`
}

type UserRoleResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type ConfirmPaymentRequest struct {
	ParcelID      string `json:"parcelId"`
	PayerEmail    string `json:"payerEmail"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Method        string `json:"method"`
	TransactionID string `json:"transactionId"`
}

type PaymentResponse struct {
	ID            string    `json:"id"`
	ParcelID      string    `json:"parcelId"`
	PayerEmail    string    `json:"payerEmail"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	Method        string    `json:"method"`
	TransactionID string    `json:"transactionId"`
	CreatedAt     time.Time `json:"createdAt"`
}

type PaymentIntentRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type PaymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

func parcelFromDomain(p *parcel.Parcel) ParcelResponse {
	response := ParcelResponse{
		ID:              p.ID().String(),
		TrackingCode:    p.TrackingCode().String(),
		SenderEmail:     p.SenderEmail(),
		ReceiverName:    p.ReceiverName(),
		ReceiverAddress: p.ReceiverAddress(),
		WeightGrams:     p.WeightGrams(),
		CostAmount:      p.CostAmount(),
		PaymentStatus:   p.PaymentStatus().String(),
		DeliveryStatus:  p.DeliveryStatus().String(),
		CashoutStatus:   p.CashoutStatus().String(),
		CashoutAmount:   p.CashoutAmount(),
		CashoutAt:       p.CashoutAt(),
		CreatedAt:       p.CreatedAt(),
	}

	if assignment := p.Rider(); assignment != nil {
		riderID := assignment.RiderID.String()
		riderEmail := assignment.Email
		riderName := assignment.Name
		response.RiderID = &riderID
		response.RiderEmail = &riderEmail
		response.RiderName = &riderName
	}

	return response
}

func parcelFromReadModel(p queries.ParcelResponse) ParcelResponse {
	response := ParcelResponse{
		ID:              p.ID.String(),
		TrackingCode:    p.TrackingCode,
		SenderEmail:     p.SenderEmail,
		ReceiverName:    p.ReceiverName,
		ReceiverAddress: p.ReceiverAddr,
		WeightGrams:     p.WeightGrams,
		CostAmount:      p.CostAmount,
		PaymentStatus:   p.PaymentStatus,
		DeliveryStatus:  p.DeliveryStatus,
		RiderEmail:      p.RiderEmail,
		RiderName:       p.RiderName,
		CashoutStatus:   p.CashoutStatus,
		CashoutAmount:   p.CashoutAmount,
		CashoutAt:       p.CashoutAt,
		CreatedAt:       p.CreatedAt,
	}

	if p.RiderID != nil {
		riderID := p.RiderID.String()
		response.RiderID = &riderID
	}

	return response
}

func riderFromDomain(r *rider.Rider) RiderResponse {
	return RiderResponse{
		ID:        r.ID().String(),
		Name:      r.Name(),
		Email:     r.Email(),
		Phone:     r.Phone(),
		District:  r.District(),
		Status:    r.Status().String(),
		CreatedAt: r.CreatedAt(),
	}
}

func riderFromReadModel(r queries.GetRidersQueryResponse) RiderResponse {
	return RiderResponse{
		ID:        r.ID.String(),
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		District:  r.District,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
}

func userFromDomain(u *user.User) UserResponse {
	return UserResponse{
		ID:          u.ID().String(),
		Email:       u.Email(),
		DisplayName: u.DisplayName(),
		Role:        u.Role().String(),
		CreatedAt:   u.CreatedAt(),
		LastLoginAt: u.LastLoginAt(),
	}
}

func paymentFromDomain(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID().String(),
		ParcelID:      p.ParcelID().String(),
		PayerEmail:    p.PayerEmail(),
		Amount:        p.Amount(),
		Currency:      p.Currency(),
		Method:        p.Method(),
		TransactionID: p.TransactionID(),
		CreatedAt:     p.CreatedAt(),
	}
}

func paymentFromReadModel(p queries.GetPaymentHistoryQueryResponse) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID.String(),
		ParcelID:      p.ParcelID.String(),
		PayerEmail:    p.PayerEmail,
		Amount:        p.Amount,
		Currency:      p.Currency,
		Method:        p.Method,
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
	}
}

func intentFromPort(i *ports.PaymentIntent) PaymentIntentResponse {
	return PaymentIntentResponse{
		ID:           i.ID,
		ClientSecret: i.ClientSecret,
		Amount:       i.Amount,
		Currency:     i.Currency,
	}
}
