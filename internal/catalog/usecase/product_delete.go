package usecase

import (
	"context"
	"log/slog"

	"github.com/storemvp/storemvp/internal/pkg/goerror"
)

// ProductDelete removes a product. Deleting an id that does not exist reports
// not-found so repeated deletes stay observable to the caller.
func (s *Usecase) ProductDelete(ctx context.Context, id string) error {
	ctx, span := s.startSpan(ctx, "ProductDelete")
	defer span.End()

	deleted, err := s.repo.DeleteProduct(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete product", "product_id", id, "error", err)
		return goerror.NewServer(err)
	}
	if !deleted {
		return goerror.NewNotFound("product", id)
	}

	return nil
}
