package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/storemvp/storemvp/internal/payment/entity"
	"github.com/storemvp/storemvp/internal/pkg/goerror"
)

// PaymentCreate stores a new payment with a server-generated reference. A
// payment starts as pending unless the caller supplies a known status.
func (s *Usecase) PaymentCreate(ctx context.Context, in PaymentInput) (*entity.Payment, error) {
	ctx, span := s.startSpan(ctx, "PaymentCreate")
	defer span.End()

	if fails := s.rules.Validate(in); len(fails) > 0 {
		return nil, goerror.NewValidation(fails.ByField())
	}

	now := s.clock.Now()
	payment, err := s.repo.AddPayment(ctx, entity.Payment{
		OrderID:   strings.TrimSpace(in.OrderID),
		Amount:    in.Amount,
		Method:    strings.TrimSpace(in.Method),
		Reference: s.refGen.Generate(),
		Status:    entity.PaymentStatusFromString(string(in.Status)),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo add payment", "error", err)
		return nil, goerror.NewServer(err)
	}

	return payment, nil
}
