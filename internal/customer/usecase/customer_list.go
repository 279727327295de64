package usecase

import (
	"context"
	"log/slog"

	"github.com/storemvp/storemvp/internal/customer/entity"
	"github.com/storemvp/storemvp/internal/pkg/goerror"
)

func (s *Usecase) CustomerList(ctx context.Context) ([]entity.Customer, error) {
	ctx, span := s.startSpan(ctx, "CustomerList")
	defer span.End()

	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list customers", "error", err)
		return nil, goerror.NewServer(err)
	}

	return customers, nil
}
