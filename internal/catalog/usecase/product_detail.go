package usecase

import (
	"context"
	"log/slog"

	"github.com/storemvp/storemvp/internal/catalog/entity"
	"github.com/storemvp/storemvp/internal/pkg/goerror"
)

func (s *Usecase) ProductDetail(ctx context.Context, id string) (*entity.Product, error) {
	ctx, span := s.startSpan(ctx, "ProductDetail")
	defer span.End()

	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get product", "product_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}
	if product == nil {
		return nil, goerror.NewNotFound("product", id)
	}

	return product, nil
}
