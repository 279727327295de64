package inbound

import (
	"net/http"
	"time"

	"github.com/storemvp/storemvp/internal/customer/entity"
)

type CustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toCustomerResponse(c entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type customerCreatedResponse struct {
	CustomerResponse
	location string
}

func (customerCreatedResponse) StatusCode() int {
	return http.StatusCreated
}

func (c customerCreatedResponse) Location() string {
	return c.location
}
