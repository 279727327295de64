package entity

import "time"

// Product is a catalog item offered by the store.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
