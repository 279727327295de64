package usecase

import (
	"context"
	"log/slog"

	"github.com/storemvp/storemvp/internal/order/entity"
	"github.com/storemvp/storemvp/internal/pkg/goerror"
)

func (s *Usecase) OrderDetail(ctx context.Context, id string) (*entity.Order, error) {
	ctx, span := s.startSpan(ctx, "OrderDetail")
	defer span.End()

	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get order", "order_id", id, "error", err)
		return nil, goerror.NewServer(err)
	}
	if order == nil {
		return nil, goerror.NewNotFound("order", id)
	}

	return order, nil
}
