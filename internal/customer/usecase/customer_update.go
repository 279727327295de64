package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/storemvp/storemvp/internal/customer/entity"
	"github.com/storemvp/storemvp/internal/pkg/goerror"
)

// CustomerUpdate replaces the writable fields of an existing customer. The
// candidate is validated before the record is looked up.
func (s *Usecase) CustomerUpdate(ctx context.Context, id string, in CustomerInput) error {
	ctx, span := s.startSpan(ctx, "CustomerUpdate")
	defer span.End()

	if fails := s.rules.Validate(in); len(fails) > 0 {
		return goerror.NewValidation(fails.ByField())
	}

	customer, err := s.repo.UpdateCustomer(ctx, entity.Customer{
		ID:        id,
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(strings.ToLower(in.Email)),
		Address:   strings.TrimSpace(in.Address),
		UpdatedAt: s.clock.Now(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update customer", "customer_id", id, "error", err)
		return goerror.NewServer(err)
	}
	if customer == nil {
		return goerror.NewNotFound("customer", id)
	}

	return nil
}
