package usecase

import (
	"context"
	"log/slog"

	"github.com/storemvp/storemvp/internal/payment/entity"
	"github.com/storemvp/storemvp/internal/pkg/goerror"
)

// PaymentList returns every stored payment. An empty store is not an error.
func (s *Usecase) PaymentList(ctx context.Context) ([]entity.Payment, error) {
	ctx, span := s.startSpan(ctx, "PaymentList")
	defer span.End()

	payments, err := s.repo.ListPayments(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list payments", "error", err)
		return nil, goerror.NewServer(err)
	}

	return payments, nil
}
