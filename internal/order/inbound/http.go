package inbound

import (
	"context"

	"github.com/storemvp/storemvp/internal/order/entity"
	"github.com/storemvp/storemvp/internal/order/usecase"
	"github.com/storemvp/storemvp/internal/pkg/router"
)

type uc interface {
	OrderList(ctx context.Context) ([]entity.Order, error)
	OrderDetail(ctx context.Context, id string) (*entity.Order, error)
	OrderCreate(ctx context.Context, in usecase.OrderInput) (*entity.Order, error)
	OrderUpdate(ctx context.Context, id string, in usecase.OrderInput) error
	OrderDelete(ctx context.Context, id string) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/orders", end.OrderList)
	r.GET("/api/v1/orders/:id", end.OrderDetail)
	r.POST("/api/v1/orders", end.OrderCreate)
	r.PUT("/api/v1/orders/:id", end.OrderUpdate)
	r.DELETE("/api/v1/orders/:id", end.OrderDelete)
}
