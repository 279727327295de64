package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/storemvp/storemvp/internal/order/entity"
	"github.com/storemvp/storemvp/internal/pkg/goerror"
	"github.com/storemvp/storemvp/internal/pkg/instrument"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type fixedNumber struct {
	n int64
}

func (f fixedNumber) Generate() int64 {
	return f.n
}

type stubRepo struct {
	addFn    func(ctx context.Context, o entity.Order) (*entity.Order, error)
	getFn    func(ctx context.Context, id string) (*entity.Order, error)
	listFn   func(ctx context.Context) ([]entity.Order, error)
	updateFn func(ctx context.Context, o entity.Order) (*entity.Order, error)
	deleteFn func(ctx context.Context, id string) (bool, error)

	updateCalled bool
}

func (r *stubRepo) AddOrder(ctx context.Context, o entity.Order) (*entity.Order, error) {
	return r.addFn(ctx, o)
}

func (r *stubRepo) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	if r.getFn == nil {
		return nil, nil
	}
	return r.getFn(ctx, id)
}

func (r *stubRepo) ListOrders(ctx context.Context) ([]entity.Order, error) {
	if r.listFn == nil {
		return nil, nil
	}
	return r.listFn(ctx)
}

func (r *stubRepo) UpdateOrder(ctx context.Context, o entity.Order) (*entity.Order, error) {
	r.updateCalled = true
	if r.updateFn == nil {
		return nil, nil
	}
	return r.updateFn(ctx, o)
}

func (r *stubRepo) DeleteOrder(ctx context.Context, id string) (bool, error) {
	if r.deleteFn == nil {
		return false, nil
	}
	return r.deleteFn(ctx, id)
}

type stubPublisher struct {
	published []OrderPlacedEvent
	err       error
}

func (p *stubPublisher) PublishOrderPlaced(_ context.Context, ev OrderPlacedEvent) error {
	p.published = append(p.published, ev)
	return p.err
}

func validInput() OrderInput {
	return OrderInput{
		CustomerID: "c-1",
		ProductID:  "p-1",
		Quantity:   2,
		Total:      159.98,
	}
}

func newCreateUsecase(repo *stubRepo, pub *stubPublisher) *Usecase {
	return New(Dependency{
		Repo:          repo,
		RepoMessaging: pub,
		Clock:         fixedClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
		NumberGen:     fixedNumber{n: 42},
		Instrument:    instrument.NewNoop(),
	})
}

func TestOrderCreatePublishesEvent(t *testing.T) {
	// Arrange
	repo := &stubRepo{
		addFn: func(_ context.Context, o entity.Order) (*entity.Order, error) {
			o.ID = "o-1"
			return &o, nil
		},
	}
	pub := &stubPublisher{}
	uc := newCreateUsecase(repo, pub)

	// Act
	order, err := uc.OrderCreate(context.Background(), validInput())

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Number != 42 {
		t.Fatalf("expected generated order number, got %d", order.Number)
	}
	if len(pub.published) != 1 {
		t.Fatalf("expected one published event, got %d", len(pub.published))
	}
	ev := pub.published[0]
	if ev.OrderID != "o-1" || ev.Total != 159.98 || ev.CustomerID != "c-1" {
		t.Fatalf("unexpected event payload: %+v", ev)
	}
}

func TestOrderCreateSurvivesPublishFailure(t *testing.T) {
	// Arrange
	repo := &stubRepo{
		addFn: func(_ context.Context, o entity.Order) (*entity.Order, error) {
			o.ID = "o-1"
			return &o, nil
		},
	}
	pub := &stubPublisher{err: errors.New("broker down")}
	uc := newCreateUsecase(repo, pub)

	// Act
	order, err := uc.OrderCreate(context.Background(), validInput())

	// Assert
	if err != nil {
		t.Fatalf("the stored order is the source of truth, got error %v", err)
	}
	if order == nil || order.ID != "o-1" {
		t.Fatalf("expected the created order, got %v", order)
	}
}

func TestOrderCreateValidation(t *testing.T) {
	// Arrange
	pub := &stubPublisher{}
	uc := newCreateUsecase(&stubRepo{}, pub)

	// Act
	_, err := uc.OrderCreate(context.Background(), OrderInput{})

	// Assert
	var gerr *goerror.Error
	if !errors.As(err, &gerr) || gerr.Kind() != goerror.KindValidation {
		t.Fatalf("expected validation failure, got %v", err)
	}
	for _, field := range []string{"CustomerID", "ProductID", "Quantity", "Total"} {
		if len(gerr.Fields()[field]) == 0 {
			t.Fatalf("expected failure for %s, got %v", field, gerr.Fields())
		}
	}
	if len(pub.published) != 0 {
		t.Fatal("expected no event for an invalid order")
	}
}
