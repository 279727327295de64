package usecase

import (
	"context"

	"github.com/storemvp/storemvp/internal/catalog/entity"
	"github.com/storemvp/storemvp/internal/pkg/clock"
	"github.com/storemvp/storemvp/internal/pkg/instrument"
	"github.com/storemvp/storemvp/internal/pkg/validation"
	"go.opentelemetry.io/otel/trace"
)

// ProductInput carries the writable product fields for create and update.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
}

type repoDB interface {
	AddProduct(ctx context.Context, p entity.Product) (*entity.Product, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]entity.Product, error)
	UpdateProduct(ctx context.Context, p entity.Product) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) (bool, error)
}

type Usecase struct {
	repo  repoDB
	clock clock.Clocker
	ins   instrument.Instrumentation
	rules *validation.RuleSet[ProductInput]
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
		rules: productRules(),
	}
}

// productRules is the product validation table. Declaration order fixes the
// order of reported failures.
func productRules() *validation.RuleSet[ProductInput] {
	return validation.NewRuleSet[ProductInput]().
		Field("Name", func(in ProductInput) any { return in.Name },
			validation.Required("Name is required"),
			validation.MaxLen(100, "Name must not exceed 100 characters"),
		).
		Field("Description", func(in ProductInput) any { return in.Description },
			validation.Required("Description is required"),
			validation.MaxLen(500, "Description must not exceed 500 characters"),
		).
		Field("Price", func(in ProductInput) any { return in.Price },
			validation.Positive("Price must be greater than 0"),
		).
		Field("Stock", func(in ProductInput) any { return in.Stock },
			validation.NotNegative("Stock must be greater than or equal to 0"),
		)
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("catalog.usecase").Start(ctx, name)
}
