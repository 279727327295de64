package inbound

import (
	"github.com/samber/lo"
	"github.com/storemvp/storemvp/internal/order/entity"
	"github.com/storemvp/storemvp/internal/order/usecase"
	"github.com/storemvp/storemvp/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for order records.
type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) OrderList(r *router.Request) (any, error) {
	orders, err := h.uc.OrderList(r.Context())
	if err != nil {
		return nil, err
	}

	return lo.Map(orders, func(o entity.Order, _ int) OrderResponse {
		return toOrderResponse(o)
	}), nil
}

func (h *HTTPEndpoint) OrderDetail(r *router.Request) (any, error) {
	order, err := h.uc.OrderDetail(r.Context(), r.GetParam("id"))
	if err != nil {
		return nil, err
	}

	return toOrderResponse(*order), nil
}

func (h *HTTPEndpoint) OrderCreate(r *router.Request) (any, error) {
	var req OrderRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	order, err := h.uc.OrderCreate(r.Context(), usecase.OrderInput{
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		Total:      req.Total,
	})
	if err != nil {
		return nil, err
	}

	return orderCreatedResponse{
		OrderResponse: toOrderResponse(*order),
		location:      "/api/v1/orders/" + order.ID,
	}, nil
}

func (h *HTTPEndpoint) OrderUpdate(r *router.Request) (any, error) {
	var req OrderRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	err := h.uc.OrderUpdate(r.Context(), r.GetParam("id"), usecase.OrderInput{
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		Total:      req.Total,
	})
	if err != nil {
		return nil, err
	}

	return nil, nil
}

func (h *HTTPEndpoint) OrderDelete(r *router.Request) (any, error) {
	if err := h.uc.OrderDelete(r.Context(), r.GetParam("id")); err != nil {
		return nil, err
	}

	return nil, nil
}
