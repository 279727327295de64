package usecase

import (
	"context"

	"github.com/storemvp/storemvp/internal/payment/entity"
	"github.com/storemvp/storemvp/internal/pkg/clock"
	"github.com/storemvp/storemvp/internal/pkg/instrument"
	"github.com/storemvp/storemvp/internal/pkg/uid"
	"github.com/storemvp/storemvp/internal/pkg/validation"
	"go.opentelemetry.io/otel/trace"
)

// PaymentInput carries the writable payment fields for create and update.
type PaymentInput struct {
	OrderID string
	Amount  float64
	Method  string
	Status  entity.PaymentStatus
}

type repoDB interface {
	AddPayment(ctx context.Context, p entity.Payment) (*entity.Payment, error)
	GetPayment(ctx context.Context, id string) (*entity.Payment, error)
	ListPayments(ctx context.Context) ([]entity.Payment, error)
	UpdatePayment(ctx context.Context, p entity.Payment) (*entity.Payment, error)
	DeletePayment(ctx context.Context, id string) (bool, error)
}

type Usecase struct {
	repo   repoDB
	clock  clock.Clocker
	refGen uid.StringID
	ins    instrument.Instrumentation
	rules  *validation.RuleSet[PaymentInput]
}

type Dependency struct {
	Repo       repoDB
	Clock      clock.Clocker
	RefGen     uid.StringID
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repo:   dep.Repo,
		clock:  dep.Clock,
		refGen: dep.RefGen,
		ins:    dep.Instrument,
		rules:  paymentRules(),
	}
}

func paymentRules() *validation.RuleSet[PaymentInput] {
	return validation.NewRuleSet[PaymentInput]().
		Field("OrderID", func(in PaymentInput) any { return in.OrderID },
			validation.Required("OrderID is required"),
		).
		Field("Amount", func(in PaymentInput) any { return in.Amount },
			validation.Positive("Amount must be greater than 0"),
		).
		Field("Method", func(in PaymentInput) any { return in.Method },
			validation.Required("Method is required"),
			validation.MaxLen(50, "Method must not exceed 50 characters"),
		)
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("payment.usecase").Start(ctx, name)
}
