package usecase

import (
	"context"
	"log/slog"

	"github.com/storemvp/storemvp/internal/pkg/goerror"
)

// PaymentDelete removes the payment with the given id. Deleting an unknown id
// reports not found.
func (s *Usecase) PaymentDelete(ctx context.Context, id string) error {
	ctx, span := s.startSpan(ctx, "PaymentDelete")
	defer span.End()

	deleted, err := s.repo.DeletePayment(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete payment", "payment_id", id, "error", err)
		return goerror.NewServer(err)
	}
	if !deleted {
		return goerror.NewNotFound("payment", id)
	}

	return nil
}
