package usecase

import (
	"context"
	"log/slog"

	"github.com/storemvp/storemvp/internal/pkg/goerror"
)

func (s *Usecase) OrderDelete(ctx context.Context, id string) error {
	ctx, span := s.startSpan(ctx, "OrderDelete")
	defer span.End()

	deleted, err := s.repo.DeleteOrder(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete order", "order_id", id, "error", err)
		return goerror.NewServer(err)
	}
	if !deleted {
		return goerror.NewNotFound("order", id)
	}

	return nil
}
