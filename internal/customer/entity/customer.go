package entity

import "time"

// Customer is a registered buyer.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
