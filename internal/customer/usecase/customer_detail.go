package usecase

import (
	"context"
	"log/slog"

	"github.com/storemvp/storemvp/internal/customer/entity"
	"github.com/storemvp/storemvp/internal/pkg/goerror"
)

func (s *Usecase) CustomerDetail(ctx context.Context, id string) (*entity.Customer, error) {
	ctx, span := s.startSpan(ctx, "CustomerDetail")
	defer span.End()

	customer, err := s.repo.GetCustomer(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get customer", "customer_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}
	if customer == nil {
		return nil, goerror.NewNotFound("customer", id)
	}

	return customer, nil
}
