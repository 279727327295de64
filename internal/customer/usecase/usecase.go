package usecase

import (
	"context"

	"github.com/storemvp/storemvp/internal/customer/entity"
	"github.com/storemvp/storemvp/internal/pkg/clock"
	"github.com/storemvp/storemvp/internal/pkg/instrument"
	"github.com/storemvp/storemvp/internal/pkg/validation"
	"go.opentelemetry.io/otel/trace"
)

// CustomerInput carries the writable customer fields for create and update.
type CustomerInput struct {
	Name    string
	Email   string
	Address string
}

type repoDB interface {
	AddCustomer(ctx context.Context, c entity.Customer) (*entity.Customer, error)
	GetCustomer(ctx context.Context, id string) (*entity.Customer, error)
	ListCustomers(ctx context.Context) ([]entity.Customer, error)
	UpdateCustomer(ctx context.Context, c entity.Customer) (*entity.Customer, error)
	DeleteCustomer(ctx context.Context, id string) (bool, error)
}

type Usecase struct {
	repo  repoDB
	clock clock.Clocker
	ins   instrument.Instrumentation
	rules *validation.RuleSet[CustomerInput]
}

type Dependency struct {
	Repo       repoDB
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repo:  dep.Repo,
		clock: dep.Clock,
		ins:   dep.Instrument,
		rules: customerRules(),
	}
}

func customerRules() *validation.RuleSet[CustomerInput] {
	return validation.NewRuleSet[CustomerInput]().
		Field("Name", func(in CustomerInput) any { return in.Name },
			validation.Required("Name is required"),
			validation.MaxLen(100, "Name must not exceed 100 characters"),
		).
		Field("Email", func(in CustomerInput) any { return in.Email },
			validation.Required("Email is required"),
			validation.Email("Email is not a valid email address"),
		).
		Field("Address", func(in CustomerInput) any { return in.Address },
			validation.Required("Address is required"),
			validation.MaxLen(200, "Address must not exceed 200 characters"),
		)
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("customer.usecase").Start(ctx, name)
}
