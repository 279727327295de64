package inbound

import (
	"context"

	"github.com/storemvp/storemvp/internal/catalog/entity"
	"github.com/storemvp/storemvp/internal/catalog/usecase"
	"github.com/storemvp/storemvp/internal/pkg/router"
)

type uc interface {
	ProductList(ctx context.Context) ([]entity.Product, error)
	ProductDetail(ctx context.Context, id string) (*entity.Product, error)
	ProductCreate(ctx context.Context, in usecase.ProductInput) (*entity.Product, error)
	ProductUpdate(ctx context.Context, id string, in usecase.ProductInput) error
	ProductDelete(ctx context.Context, id string) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/products", end.ProductList)
	r.GET("/api/v1/products/:id", end.ProductDetail)
	r.POST("/api/v1/products", end.ProductCreate)
	r.PUT("/api/v1/products/:id", end.ProductUpdate)
	r.DELETE("/api/v1/products/:id", end.ProductDelete)
}
