package usecase

import (
	"context"
	"log/slog"

	"github.com/storemvp/storemvp/internal/catalog/entity"
	"github.com/storemvp/storemvp/internal/pkg/goerror"
)

// ProductList returns every product. An empty catalog is a successful result.
func (s *Usecase) ProductList(ctx context.Context) ([]entity.Product, error) {
	ctx, span := s.startSpan(ctx, "ProductList")
	defer span.End()

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list products", "error", err)
		return nil, goerror.NewServer(err)
	}

	return products, nil
}
