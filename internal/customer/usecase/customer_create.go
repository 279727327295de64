package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/storemvp/storemvp/internal/customer/entity"
	"github.com/storemvp/storemvp/internal/pkg/goerror"
)

func (s *Usecase) CustomerCreate(ctx context.Context, in CustomerInput) (*entity.Customer, error) {
	ctx, span := s.startSpan(ctx, "CustomerCreate")
	defer span.End()

	if fails := s.rules.Validate(in); len(fails) > 0 {
		return nil, goerror.NewValidation(fails.ByField())
	}

	now := s.clock.Now()
	customer, err := s.repo.AddCustomer(ctx, entity.Customer{
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(strings.ToLower(in.Email)),
		Address:   strings.TrimSpace(in.Address),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo add customer", "error", err)
		return nil, goerror.NewServer(err)
	}

	return customer, nil
}
