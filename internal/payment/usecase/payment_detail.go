package usecase

import (
	"context"
	"log/slog"

	"github.com/storemvp/storemvp/internal/payment/entity"
	"github.com/storemvp/storemvp/internal/pkg/goerror"
)

// PaymentDetail returns the payment with the given id.
func (s *Usecase) PaymentDetail(ctx context.Context, id string) (*entity.Payment, error) {
	ctx, span := s.startSpan(ctx, "PaymentDetail")
	defer span.End()

	payment, err := s.repo.GetPayment(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get payment", "payment_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}
	if payment == nil {
		return nil, goerror.NewNotFound("payment", id)
	}

	return payment, nil
}
