package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/storemvp/storemvp/internal/order/entity"
	"github.com/storemvp/storemvp/internal/pkg/goerror"
)

// OrderCreate stores a new order and announces it on the message bus. The
// order is the system of record; a failed announcement is logged but does not
// undo the create.
func (s *Usecase) OrderCreate(ctx context.Context, in OrderInput) (*entity.Order, error) {
	ctx, span := s.startSpan(ctx, "OrderCreate")
	defer span.End()

	if fails := s.rules.Validate(in); len(fails) > 0 {
		return nil, goerror.NewValidation(fails.ByField())
	}

	now := s.clock.Now()
	order, err := s.repo.AddOrder(ctx, entity.Order{
		Number:     s.numberGen.Generate(),
		CustomerID: strings.TrimSpace(in.CustomerID),
		ProductID:  strings.TrimSpace(in.ProductID),
		Quantity:   in.Quantity,
		Total:      in.Total,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo add order", "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoMsg.PublishOrderPlaced(ctx, OrderPlacedEvent{
		OrderID:    order.ID,
		Number:     order.Number,
		CustomerID: order.CustomerID,
		ProductID:  order.ProductID,
		Quantity:   order.Quantity,
		Total:      order.Total,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to publish order placed event", "order_id", order.ID, "error", err)
	}

	return order, nil
}
