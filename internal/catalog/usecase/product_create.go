package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/storemvp/storemvp/internal/catalog/entity"
	"github.com/storemvp/storemvp/internal/pkg/goerror"
)

func (s *Usecase) ProductCreate(ctx context.Context, in ProductInput) (*entity.Product, error) {
	ctx, span := s.startSpan(ctx, "ProductCreate")
	defer span.End()

	if fails := s.rules.Validate(in); len(fails) > 0 {
		return nil, goerror.NewValidation(fails.ByField())
	}

	now := s.clock.Now()
	product, err := s.repo.AddProduct(ctx, entity.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo add product", "error", err)
		return nil, goerror.NewServer(err)
	}

	return product, nil
}
