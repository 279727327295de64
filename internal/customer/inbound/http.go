package inbound

import (
	"context"

	"github.com/storemvp/storemvp/internal/customer/entity"
	"github.com/storemvp/storemvp/internal/customer/usecase"
	"github.com/storemvp/storemvp/internal/pkg/router"
)

type uc interface {
	CustomerList(ctx context.Context) ([]entity.Customer, error)
	CustomerDetail(ctx context.Context, id string) (*entity.Customer, error)
	CustomerCreate(ctx context.Context, in usecase.CustomerInput) (*entity.Customer, error)
	CustomerUpdate(ctx context.Context, id string, in usecase.CustomerInput) error
	CustomerDelete(ctx context.Context, id string) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/customers", end.CustomerList)
	r.GET("/api/v1/customers/:id", end.CustomerDetail)
	r.POST("/api/v1/customers", end.CustomerCreate)
	r.PUT("/api/v1/customers/:id", end.CustomerUpdate)
	r.DELETE("/api/v1/customers/:id", end.CustomerDelete)
}
