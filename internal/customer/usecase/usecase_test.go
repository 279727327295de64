package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/storemvp/storemvp/internal/customer/entity"
	"github.com/storemvp/storemvp/internal/pkg/goerror"
	"github.com/storemvp/storemvp/internal/pkg/instrument"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type stubRepo struct {
	addFn    func(ctx context.Context, c entity.Customer) (*entity.Customer, error)
	getFn    func(ctx context.Context, id string) (*entity.Customer, error)
	listFn   func(ctx context.Context) ([]entity.Customer, error)
	updateFn func(ctx context.Context, c entity.Customer) (*entity.Customer, error)
	deleteFn func(ctx context.Context, id string) (bool, error)

	addCalled    bool
	updateCalled bool
}

func (r *stubRepo) AddCustomer(ctx context.Context, c entity.Customer) (*entity.Customer, error) {
	r.addCalled = true
	return r.addFn(ctx, c)
}

func (r *stubRepo) GetCustomer(ctx context.Context, id string) (*entity.Customer, error) {
	return r.getFn(ctx, id)
}

func (r *stubRepo) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	return r.listFn(ctx)
}

func (r *stubRepo) UpdateCustomer(ctx context.Context, c entity.Customer) (*entity.Customer, error) {
	r.updateCalled = true
	return r.updateFn(ctx, c)
}

func (r *stubRepo) DeleteCustomer(ctx context.Context, id string) (bool, error) {
	return r.deleteFn(ctx, id)
}

func newUsecase(repo *stubRepo, now time.Time) *Usecase {
	return New(Dependency{
		Repo:       repo,
		Clock:      fixedClock{now: now},
		Instrument: instrument.NewNoop(),
	})
}

func validInput() CustomerInput {
	return CustomerInput{
		Name:    "Jane",
		Email:   "jane@example.com",
		Address: "12 Main St",
	}
}

func TestCustomerCreate(t *testing.T) {
	// Arrange
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	var stored entity.Customer
	repo := &stubRepo{
		addFn: func(_ context.Context, c entity.Customer) (*entity.Customer, error) {
			c.ID = "c-1"
			stored = c
			return &c, nil
		},
	}
	uc := newUsecase(repo, now)

	// Act
	customer, err := uc.CustomerCreate(context.Background(), validInput())

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if customer.ID == "" || customer.ID != "c-1" {
		t.Fatalf("expected repo-assigned id, got %q", customer.ID)
	}
	if customer.Name != "Jane" || customer.Email != "jane@example.com" || customer.Address != "12 Main St" {
		t.Fatalf("expected input fields echoed on the record, got %+v", customer)
	}
	if !stored.CreatedAt.Equal(now) || !stored.UpdatedAt.Equal(now) {
		t.Fatalf("expected clock timestamps, got %v / %v", stored.CreatedAt, stored.UpdatedAt)
	}
}

func TestCustomerCreateNormalizesEmail(t *testing.T) {
	// Arrange
	var stored entity.Customer
	repo := &stubRepo{
		addFn: func(_ context.Context, c entity.Customer) (*entity.Customer, error) {
			stored = c
			return &c, nil
		},
	}
	uc := newUsecase(repo, time.Now())

	in := validInput()
	in.Name = "  Jane  "
	in.Email = "  Jane@Example.COM "

	// Act
	if _, err := uc.CustomerCreate(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Assert
	if stored.Name != "Jane" {
		t.Fatalf("expected trimmed name, got %q", stored.Name)
	}
	if stored.Email != "jane@example.com" {
		t.Fatalf("expected lowercased trimmed email, got %q", stored.Email)
	}
}

func TestCustomerCreatePartialFailure(t *testing.T) {
	// Arrange
	repo := &stubRepo{}
	uc := newUsecase(repo, time.Now())

	// Act
	_, err := uc.CustomerCreate(context.Background(), CustomerInput{
		Name:    "",
		Email:   "bad",
		Address: "ok-address",
	})

	// Assert
	var gerr *goerror.Error
	if !errors.As(err, &gerr) || gerr.Kind() != goerror.KindValidation {
		t.Fatalf("expected validation failure, got %v", err)
	}

	want := map[string][]string{
		"Name":  {"Name is required"},
		"Email": {"Email is not a valid email address"},
	}
	if !reflect.DeepEqual(gerr.Fields(), want) {
		t.Fatalf("expected %v, got %v", want, gerr.Fields())
	}
	if repo.addCalled {
		t.Fatal("expected no repository call for an invalid candidate")
	}
}

func TestCustomerCreateWrapsRepoError(t *testing.T) {
	// Arrange
	repo := &stubRepo{
		addFn: func(context.Context, entity.Customer) (*entity.Customer, error) {
			return nil, errors.New("disk full")
		},
	}
	uc := newUsecase(repo, time.Now())

	// Act
	_, err := uc.CustomerCreate(context.Background(), validInput())

	// Assert
	if goerror.KindOf(err) != goerror.KindServer {
		t.Fatalf("expected server failure, got %v", err)
	}
}

func TestCustomerUpdateValidatesBeforeLookup(t *testing.T) {
	// Arrange
	repo := &stubRepo{
		updateFn: func(context.Context, entity.Customer) (*entity.Customer, error) {
			return nil, nil
		},
	}
	uc := newUsecase(repo, time.Now())

	// Act
	err := uc.CustomerUpdate(context.Background(), "missing-id", CustomerInput{})

	// Assert
	if goerror.KindOf(err) != goerror.KindValidation {
		t.Fatalf("expected validation failure, got %v", err)
	}
	if repo.updateCalled {
		t.Fatal("expected no repository call for an invalid candidate")
	}
}

func TestCustomerUpdateNotFound(t *testing.T) {
	// Arrange
	repo := &stubRepo{
		updateFn: func(context.Context, entity.Customer) (*entity.Customer, error) {
			return nil, nil
		},
	}
	uc := newUsecase(repo, time.Now())

	// Act
	err := uc.CustomerUpdate(context.Background(), "missing-id", validInput())

	// Assert
	if goerror.KindOf(err) != goerror.KindNotFound {
		t.Fatalf("expected not found failure, got %v", err)
	}
}

func TestCustomerDetailNotFound(t *testing.T) {
	// Arrange
	repo := &stubRepo{
		getFn: func(context.Context, string) (*entity.Customer, error) {
			return nil, nil
		},
	}
	uc := newUsecase(repo, time.Now())

	// Act
	_, err := uc.CustomerDetail(context.Background(), "nope")

	// Assert
	if goerror.KindOf(err) != goerror.KindNotFound {
		t.Fatalf("expected not found failure, got %v", err)
	}
}

func TestCustomerListEmptyIsSuccess(t *testing.T) {
	// Arrange
	repo := &stubRepo{
		listFn: func(context.Context) ([]entity.Customer, error) {
			return nil, nil
		},
	}
	uc := newUsecase(repo, time.Now())

	// Act
	customers, err := uc.CustomerList(context.Background())

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(customers) != 0 {
		t.Fatalf("expected empty result, got %v", customers)
	}
}

func TestCustomerDeleteNotFound(t *testing.T) {
	// Arrange
	repo := &stubRepo{
		deleteFn: func(context.Context, string) (bool, error) {
			return false, nil
		},
	}
	uc := newUsecase(repo, time.Now())

	// Act
	err := uc.CustomerDelete(context.Background(), "nope")

	// Assert
	if goerror.KindOf(err) != goerror.KindNotFound {
		t.Fatalf("expected not found failure, got %v", err)
	}
}
