package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/storemvp/storemvp/internal/payment/entity"
	"github.com/storemvp/storemvp/internal/pkg/goerror"
)

// PaymentUpdate replaces the writable fields of an existing payment. The
// candidate is validated before the record is looked up.
func (s *Usecase) PaymentUpdate(ctx context.Context, id string, in PaymentInput) error {
	ctx, span := s.startSpan(ctx, "PaymentUpdate")
	defer span.End()

	if fails := s.rules.Validate(in); len(fails) > 0 {
		return goerror.NewValidation(fails.ByField())
	}

	payment, err := s.repo.UpdatePayment(ctx, entity.Payment{
		ID:        id,
		OrderID:   strings.TrimSpace(in.OrderID),
		Amount:    in.Amount,
		Method:    strings.TrimSpace(in.Method),
		Status:    entity.PaymentStatusFromString(string(in.Status)),
		UpdatedAt: s.clock.Now(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update payment", "payment_id", id, "error", err)
		return goerror.NewServer(err)
	}
	if payment == nil {
		return goerror.NewNotFound("payment", id)
	}

	return nil
}
