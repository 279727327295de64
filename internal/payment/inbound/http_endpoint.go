package inbound

import (
	"github.com/samber/lo"
	"github.com/storemvp/storemvp/internal/payment/entity"
	"github.com/storemvp/storemvp/internal/payment/usecase"
	"github.com/storemvp/storemvp/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for payment records.
type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) PaymentList(r *router.Request) (any, error) {
	payments, err := h.uc.PaymentList(r.Context())
	if err != nil {
		return nil, err
	}

	return lo.Map(payments, func(p entity.Payment, _ int) PaymentResponse {
		return toPaymentResponse(p)
	}), nil
}

func (h *HTTPEndpoint) PaymentDetail(r *router.Request) (any, error) {
	payment, err := h.uc.PaymentDetail(r.Context(), r.GetParam("id"))
	if err != nil {
		return nil, err
	}

	return toPaymentResponse(*payment), nil
}

func (h *HTTPEndpoint) PaymentCreate(r *router.Request) (any, error) {
	var req PaymentRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	payment, err := h.uc.PaymentCreate(r.Context(), usecase.PaymentInput{
		OrderID: req.OrderID,
		Amount:  req.Amount,
		Method:  req.Method,
		Status:  entity.PaymentStatus(req.Status),
	})
	if err != nil {
		return nil, err
	}

	return paymentCreatedResponse{
		PaymentResponse: toPaymentResponse(*payment),
		location:        "/api/v1/payments/" + payment.ID,
	}, nil
}

func (h *HTTPEndpoint) PaymentUpdate(r *router.Request) (any, error) {
	var req PaymentRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	err := h.uc.PaymentUpdate(r.Context(), r.GetParam("id"), usecase.PaymentInput{
		OrderID: req.OrderID,
		Amount:  req.Amount,
		Method:  req.Method,
		Status:  entity.PaymentStatus(req.Status),
	})
	if err != nil {
		return nil, err
	}

	return nil, nil
}

func (h *HTTPEndpoint) PaymentDelete(r *router.Request) (any, error) {
	if err := h.uc.PaymentDelete(r.Context(), r.GetParam("id")); err != nil {
		return nil, err
	}

	return nil, nil
}
