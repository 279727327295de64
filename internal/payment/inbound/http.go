package inbound

import (
	"context"

	"github.com/storemvp/storemvp/internal/payment/entity"
	"github.com/storemvp/storemvp/internal/payment/usecase"
	"github.com/storemvp/storemvp/internal/pkg/router"
	"github.com/storemvp/storemvp/internal/shared/event"
)

type uc interface {
	PaymentList(ctx context.Context) ([]entity.Payment, error)
	PaymentDetail(ctx context.Context, id string) (*entity.Payment, error)
	PaymentCreate(ctx context.Context, in usecase.PaymentInput) (*entity.Payment, error)
	PaymentUpdate(ctx context.Context, id string, in usecase.PaymentInput) error
	PaymentDelete(ctx context.Context, id string) error
	ConsumeOrderPlaced(ctx context.Context, msg event.OrderPlacedMessage) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/payments", end.PaymentList)
	r.GET("/api/v1/payments/:id", end.PaymentDetail)
	r.POST("/api/v1/payments", end.PaymentCreate)
	r.PUT("/api/v1/payments/:id", end.PaymentUpdate)
	r.DELETE("/api/v1/payments/:id", end.PaymentDelete)
}
