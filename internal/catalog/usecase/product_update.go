package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/storemvp/storemvp/internal/catalog/entity"
	"github.com/storemvp/storemvp/internal/pkg/goerror"
)

// ProductUpdate replaces the writable fields of an existing product. The
// candidate is validated before the record is looked up, so an invalid body
// reports validation failures even for unknown ids.
func (s *Usecase) ProductUpdate(ctx context.Context, id string, in ProductInput) error {
	ctx, span := s.startSpan(ctx, "ProductUpdate")
	defer span.End()

	if fails := s.rules.Validate(in); len(fails) > 0 {
		return goerror.NewValidation(fails.ByField())
	}

	product, err := s.repo.UpdateProduct(ctx, entity.Product{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Stock:       in.Stock,
		UpdatedAt:   s.clock.Now(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update product", "product_id", id, "error", err)
		return goerror.NewServer(err)
	}
	if product == nil {
		return goerror.NewNotFound("product", id)
	}

	return nil
}
