package entity

import "time"

// Payment settles an order. Reference is a server-generated external
// identifier handed to payment providers.
type Payment struct {
	ID        string
	OrderID   string
	Amount    float64
	Method    string
	Reference string
	Status    PaymentStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
