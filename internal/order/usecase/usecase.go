package usecase

import (
	"context"

	"github.com/storemvp/storemvp/internal/order/entity"
	"github.com/storemvp/storemvp/internal/pkg/clock"
	"github.com/storemvp/storemvp/internal/pkg/instrument"
	"github.com/storemvp/storemvp/internal/pkg/uid"
	"github.com/storemvp/storemvp/internal/pkg/validation"
	"go.opentelemetry.io/otel/trace"
)

// OrderInput carries the writable order fields for create and update.
type OrderInput struct {
	CustomerID string
	ProductID  string
	Quantity   int
	Total      float64
}

// OrderPlacedEvent is handed to the messaging outbound after a new order is
// stored.
type OrderPlacedEvent struct {
	OrderID    string
	Number     int64
	CustomerID string
	ProductID  string
	Quantity   int
	Total      float64
}

type repoDB interface {
	AddOrder(ctx context.Context, o entity.Order) (*entity.Order, error)
	GetOrder(ctx context.Context, id string) (*entity.Order, error)
	ListOrders(ctx context.Context) ([]entity.Order, error)
	UpdateOrder(ctx context.Context, o entity.Order) (*entity.Order, error)
	DeleteOrder(ctx context.Context, id string) (bool, error)
}

type repoMessaging interface {
	PublishOrderPlaced(ctx context.Context, ev OrderPlacedEvent) error
}

type Usecase struct {
	repo      repoDB
	repoMsg   repoMessaging
	clock     clock.Clocker
	numberGen uid.NumberID
	ins       instrument.Instrumentation
	rules     *validation.RuleSet[OrderInput]
}

type Dependency struct {
	Repo          repoDB
	RepoMessaging repoMessaging
	Clock         clock.Clocker
	NumberGen     uid.NumberID
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repo:      dep.Repo,
		repoMsg:   dep.RepoMessaging,
		clock:     dep.Clock,
		numberGen: dep.NumberGen,
		ins:       dep.Instrument,
		rules:     orderRules(),
	}
}

func orderRules() *validation.RuleSet[OrderInput] {
	return validation.NewRuleSet[OrderInput]().
		Field("CustomerID", func(in OrderInput) any { return in.CustomerID },
			validation.Required("CustomerID is required"),
		).
		Field("ProductID", func(in OrderInput) any { return in.ProductID },
			validation.Required("ProductID is required"),
		).
		Field("Quantity", func(in OrderInput) any { return in.Quantity },
			validation.Positive("Quantity must be greater than 0"),
		).
		Field("Total", func(in OrderInput) any { return in.Total },
			validation.Positive("Total must be greater than 0"),
		)
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("order.usecase").Start(ctx, name)
}
