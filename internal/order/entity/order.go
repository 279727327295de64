package entity

import "time"

// Order is a purchase of one product by one customer. Number is a
// server-generated human-facing identifier.
type Order struct {
	ID         string
	Number     int64
	CustomerID string
	ProductID  string
	Quantity   int
	Total      float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
