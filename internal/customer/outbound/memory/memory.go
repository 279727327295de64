// Package memory keeps customers in process memory, guarded by one mutex.
package memory

import (
	"context"
	"sync"

	"github.com/storemvp/storemvp/internal/customer/entity"
	"github.com/storemvp/storemvp/internal/pkg/instrument"
	"github.com/storemvp/storemvp/internal/pkg/uid"
	"go.opentelemetry.io/otel/trace"
)

type Store struct {
	mu        sync.Mutex
	customers []entity.Customer

	uid uid.StringID
	ins instrument.Instrumentation
}

func NewStore(uid uid.StringID, ins instrument.Instrumentation) *Store {
	return &Store{uid: uid, ins: ins}
}

func (s *Store) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("customer.outbound.memory").Start(ctx, name)
}

// AddCustomer stores a new customer, assigning an id when the record has none.
func (s *Store) AddCustomer(ctx context.Context, c entity.Customer) (*entity.Customer, error) {
	_, span := s.startSpan(ctx, "AddCustomer")
	defer span.End()

	if c.ID == "" {
		c.ID = s.uid.Generate()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers = append(s.customers, c)
	return &c, nil
}

// GetCustomer returns the customer with the given id, or nil when unknown.
func (s *Store) GetCustomer(ctx context.Context, id string) (*entity.Customer, error) {
	_, span := s.startSpan(ctx, "GetCustomer")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			c := s.customers[i]
			return &c, nil
		}
	}
	return nil, nil
}

// ListCustomers returns a copy of every stored customer.
func (s *Store) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	_, span := s.startSpan(ctx, "ListCustomers")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Customer, len(s.customers))
	copy(out, s.customers)
	return out, nil
}

// UpdateCustomer replaces the stored customer and returns the updated record,
// or nil when the id is unknown.
func (s *Store) UpdateCustomer(ctx context.Context, c entity.Customer) (*entity.Customer, error) {
	_, span := s.startSpan(ctx, "UpdateCustomer")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == c.ID {
			c.CreatedAt = s.customers[i].CreatedAt
			s.customers[i] = c
			updated := s.customers[i]
			return &updated, nil
		}
	}
	return nil, nil
}

// DeleteCustomer removes the customer with the given id and reports whether a
// record was removed.
func (s *Store) DeleteCustomer(ctx context.Context, id string) (bool, error) {
	_, span := s.startSpan(ctx, "DeleteCustomer")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
