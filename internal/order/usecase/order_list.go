package usecase

import (
	"context"
	"log/slog"

	"github.com/storemvp/storemvp/internal/order/entity"
	"github.com/storemvp/storemvp/internal/pkg/goerror"
)

func (s *Usecase) OrderList(ctx context.Context) ([]entity.Order, error) {
	ctx, span := s.startSpan(ctx, "OrderList")
	defer span.End()

	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list orders", "error", err)
		return nil, goerror.NewServer(err)
	}

	return orders, nil
}
