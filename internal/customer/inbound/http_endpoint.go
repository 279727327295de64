package inbound

import (
	"github.com/samber/lo"
	"github.com/storemvp/storemvp/internal/customer/entity"
	"github.com/storemvp/storemvp/internal/customer/usecase"
	"github.com/storemvp/storemvp/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for customer records.
type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) CustomerList(r *router.Request) (any, error) {
	customers, err := h.uc.CustomerList(r.Context())
	if err != nil {
		return nil, err
	}

	return lo.Map(customers, func(c entity.Customer, _ int) CustomerResponse {
		return toCustomerResponse(c)
	}), nil
}

func (h *HTTPEndpoint) CustomerDetail(r *router.Request) (any, error) {
	customer, err := h.uc.CustomerDetail(r.Context(), r.GetParam("id"))
	if err != nil {
		return nil, err
	}

	return toCustomerResponse(*customer), nil
}

func (h *HTTPEndpoint) CustomerCreate(r *router.Request) (any, error) {
	var req CustomerRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	customer, err := h.uc.CustomerCreate(r.Context(), usecase.CustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		return nil, err
	}

	return customerCreatedResponse{
		CustomerResponse: toCustomerResponse(*customer),
		location:         "/api/v1/customers/" + customer.ID,
	}, nil
}

func (h *HTTPEndpoint) CustomerUpdate(r *router.Request) (any, error) {
	var req CustomerRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	err := h.uc.CustomerUpdate(r.Context(), r.GetParam("id"), usecase.CustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		return nil, err
	}

	return nil, nil
}

func (h *HTTPEndpoint) CustomerDelete(r *router.Request) (any, error) {
	if err := h.uc.CustomerDelete(r.Context(), r.GetParam("id")); err != nil {
		return nil, err
	}

	return nil, nil
}
