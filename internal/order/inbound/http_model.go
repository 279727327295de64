package inbound

import (
	"net/http"
	"time"

	"github.com/storemvp/storemvp/internal/order/entity"
)

type OrderRequest struct {
	CustomerID string  `json:"customer_id"`
	ProductID  string  `json:"product_id"`
	Quantity   int     `json:"quantity"`
	Total      float64 `json:"total"`
}

type OrderResponse struct {
	ID         string    `json:"id"`
	Number     int64     `json:"number"`
	CustomerID string    `json:"customer_id"`
	ProductID  string    `json:"product_id"`
	Quantity   int       `json:"quantity"`
	Total      float64   `json:"total"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toOrderResponse(o entity.Order) OrderResponse {
	return OrderResponse{
		ID:         o.ID,
		Number:     o.Number,
		CustomerID: o.CustomerID,
		ProductID:  o.ProductID,
		Quantity:   o.Quantity,
		Total:      o.Total,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

type orderCreatedResponse struct {
	OrderResponse
	location string
}

func (orderCreatedResponse) StatusCode() int {
	return http.StatusCreated
}

func (o orderCreatedResponse) Location() string {
	return o.location
}
