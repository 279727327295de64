package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/storemvp/storemvp/internal/payment/entity"
	"github.com/storemvp/storemvp/internal/pkg/goerror"
	"github.com/storemvp/storemvp/internal/pkg/instrument"
	"github.com/storemvp/storemvp/internal/shared/event"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type staticRef struct{}

func (staticRef) Generate() string {
	return "ref-123"
}

type stubRepo struct {
	addFn    func(ctx context.Context, p entity.Payment) (*entity.Payment, error)
	updateFn func(ctx context.Context, p entity.Payment) (*entity.Payment, error)
	deleteFn func(ctx context.Context, id string) (bool, error)

	updateCalled bool
}

func (r *stubRepo) AddPayment(ctx context.Context, p entity.Payment) (*entity.Payment, error) {
	return r.addFn(ctx, p)
}

func (r *stubRepo) GetPayment(context.Context, string) (*entity.Payment, error) {
	return nil, nil
}

func (r *stubRepo) ListPayments(context.Context) ([]entity.Payment, error) {
	return nil, nil
}

func (r *stubRepo) UpdatePayment(ctx context.Context, p entity.Payment) (*entity.Payment, error) {
	r.updateCalled = true
	return r.updateFn(ctx, p)
}

func (r *stubRepo) DeletePayment(ctx context.Context, id string) (bool, error) {
	return r.deleteFn(ctx, id)
}

func newUsecase(repo *stubRepo) *Usecase {
	return New(Dependency{
		Repo:       repo,
		Clock:      fixedClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
		RefGen:     staticRef{},
		Instrument: instrument.NewNoop(),
	})
}

func TestPaymentCreateAssignsReferenceAndStatus(t *testing.T) {
	// Arrange
	repo := &stubRepo{
		addFn: func(_ context.Context, p entity.Payment) (*entity.Payment, error) {
			p.ID = "pay-1"
			return &p, nil
		},
	}
	uc := newUsecase(repo)

	// Act
	payment, err := uc.PaymentCreate(context.Background(), PaymentInput{
		OrderID: "o-1",
		Amount:  99.5,
		Method:  "card",
	})

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment.Reference != "ref-123" {
		t.Fatalf("expected generated reference, got %q", payment.Reference)
	}
	if payment.Status != entity.PaymentStatusPending {
		t.Fatalf("expected pending status, got %q", payment.Status)
	}
}

func TestPaymentCreateValidation(t *testing.T) {
	// Arrange
	uc := newUsecase(&stubRepo{})

	// Act
	_, err := uc.PaymentCreate(context.Background(), PaymentInput{})

	// Assert
	var gerr *goerror.Error
	if !errors.As(err, &gerr) || gerr.Kind() != goerror.KindValidation {
		t.Fatalf("expected validation failure, got %v", err)
	}
	for _, field := range []string{"OrderID", "Amount", "Method"} {
		if len(gerr.Fields()[field]) == 0 {
			t.Fatalf("expected failure for %s, got %v", field, gerr.Fields())
		}
	}
}

func TestPaymentUpdateValidatesBeforeLookup(t *testing.T) {
	// Arrange
	repo := &stubRepo{
		updateFn: func(context.Context, entity.Payment) (*entity.Payment, error) {
			return nil, nil
		},
	}
	uc := newUsecase(repo)

	// Act
	err := uc.PaymentUpdate(context.Background(), "missing", PaymentInput{})

	// Assert
	if goerror.KindOf(err) != goerror.KindValidation {
		t.Fatalf("expected validation failure, got %v", err)
	}
	if repo.updateCalled {
		t.Fatal("expected no repository call for an invalid candidate")
	}
}

func TestPaymentUpdateNotFound(t *testing.T) {
	// Arrange
	repo := &stubRepo{
		updateFn: func(context.Context, entity.Payment) (*entity.Payment, error) {
			return nil, nil
		},
	}
	uc := newUsecase(repo)

	// Act
	err := uc.PaymentUpdate(context.Background(), "missing", PaymentInput{
		OrderID: "o-1",
		Amount:  10,
		Method:  "card",
	})

	// Assert
	if goerror.KindOf(err) != goerror.KindNotFound {
		t.Fatalf("expected not found failure, got %v", err)
	}
}

func TestConsumeOrderPlacedOpensPendingPayment(t *testing.T) {
	// Arrange
	var stored entity.Payment
	repo := &stubRepo{
		addFn: func(_ context.Context, p entity.Payment) (*entity.Payment, error) {
			stored = p
			p.ID = "pay-1"
			return &p, nil
		},
	}
	uc := newUsecase(repo)

	// Act
	err := uc.ConsumeOrderPlaced(context.Background(), event.OrderPlacedMessage{
		OrderID: "o-1",
		Total:   159.98,
	})

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.OrderID != "o-1" {
		t.Fatalf("unexpected order id: %q", stored.OrderID)
	}
	if stored.Amount != 159.98 {
		t.Fatalf("expected amount taken from the order total, got %v", stored.Amount)
	}
	if stored.Status != entity.PaymentStatusPending {
		t.Fatalf("expected pending status, got %q", stored.Status)
	}
	if stored.Reference != "ref-123" {
		t.Fatalf("expected generated reference, got %q", stored.Reference)
	}
}

func TestConsumeOrderPlacedRepoFailure(t *testing.T) {
	// Arrange
	repo := &stubRepo{
		addFn: func(context.Context, entity.Payment) (*entity.Payment, error) {
			return nil, errors.New("store unavailable")
		},
	}
	uc := newUsecase(repo)

	// Act
	err := uc.ConsumeOrderPlaced(context.Background(), event.OrderPlacedMessage{OrderID: "o-1", Total: 1})

	// Assert
	if goerror.KindOf(err) != goerror.KindServer {
		t.Fatalf("expected server failure, got %v", err)
	}
}

func TestPaymentStatusFromString(t *testing.T) {
	tests := []struct {
		in   string
		want entity.PaymentStatus
	}{
		{"paid", entity.PaymentStatusPaid},
		{"failed", entity.PaymentStatusFailed},
		{"pending", entity.PaymentStatusPending},
		{"", entity.PaymentStatusPending},
		{"garbage", entity.PaymentStatusPending},
	}

	for _, tc := range tests {
		if got := entity.PaymentStatusFromString(tc.in); got != tc.want {
			t.Fatalf("input %q: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}
