package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/storemvp/storemvp/internal/order/entity"
	"github.com/storemvp/storemvp/internal/pkg/goerror"
)

// OrderUpdate replaces the writable fields of an existing order. The
// candidate is validated before the record is looked up.
func (s *Usecase) OrderUpdate(ctx context.Context, id string, in OrderInput) error {
	ctx, span := s.startSpan(ctx, "OrderUpdate")
	defer span.End()

	if fails := s.rules.Validate(in); len(fails) > 0 {
		return goerror.NewValidation(fails.ByField())
	}

	order, err := s.repo.UpdateOrder(ctx, entity.Order{
		ID:         id,
		CustomerID: strings.TrimSpace(in.CustomerID),
		ProductID:  strings.TrimSpace(in.ProductID),
		Quantity:   in.Quantity,
		Total:      in.Total,
		UpdatedAt:  s.clock.Now(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update order", "order_id", id, "error", err)
		return goerror.NewServer(err)
	}
	if order == nil {
		return goerror.NewNotFound("order", id)
	}

	return nil
}
