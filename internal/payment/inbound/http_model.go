package inbound

import (
	"net/http"
	"time"

	"github.com/storemvp/storemvp/internal/payment/entity"
)

type PaymentRequest struct {
	OrderID string  `json:"order_id"`
	Amount  float64 `json:"amount"`
	Method  string  `json:"method"`
	Status  string  `json:"status"`
}

type PaymentResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	Reference string    `json:"reference"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toPaymentResponse(p entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		OrderID:   p.OrderID,
		Amount:    p.Amount,
		Method:    p.Method,
		Reference: p.Reference,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type paymentCreatedResponse struct {
	PaymentResponse
	location string
}

func (paymentCreatedResponse) StatusCode() int {
	return http.StatusCreated
}

func (p paymentCreatedResponse) Location() string {
	return p.location
}
