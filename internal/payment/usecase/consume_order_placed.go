package usecase

import (
	"context"
	"log/slog"

	"github.com/storemvp/storemvp/internal/payment/entity"
	"github.com/storemvp/storemvp/internal/pkg/goerror"
	"github.com/storemvp/storemvp/internal/shared/event"
)

// ConsumeOrderPlaced opens a pending payment for a freshly placed order. The
// event comes from a trusted producer, so it skips the request rule set.
func (s *Usecase) ConsumeOrderPlaced(ctx context.Context, msg event.OrderPlacedMessage) error {
	ctx, span := s.startSpan(ctx, "ConsumeOrderPlaced")
	defer span.End()

	now := s.clock.Now()
	payment, err := s.repo.AddPayment(ctx, entity.Payment{
		OrderID:   msg.OrderID,
		Amount:    msg.Total,
		Method:    "unselected",
		Reference: s.refGen.Generate(),
		Status:    entity.PaymentStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to open payment for placed order", "order_id", msg.OrderID, "error", err)
		return goerror.NewServer(err)
	}

	slog.InfoContext(ctx, "payment opened for placed order",
		"payment_id", payment.ID, "order_id", msg.OrderID, "amount", payment.Amount)

	return nil
}
