package usecase

import (
	"context"
	"log/slog"

	"github.com/storemvp/storemvp/internal/pkg/goerror"
)

func (s *Usecase) CustomerDelete(ctx context.Context, id string) error {
	ctx, span := s.startSpan(ctx, "CustomerDelete")
	defer span.End()

	deleted, err := s.repo.DeleteCustomer(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete customer", "customer_id", id, "error", err)
		return goerror.NewServer(err)
	}
	if !deleted {
		return goerror.NewNotFound("customer", id)
	}

	return nil
}
