// Package memory keeps orders in process memory, guarded by one mutex.
package memory

import (
	"context"
	"sync"

	"github.com/storemvp/storemvp/internal/order/entity"
	"github.com/storemvp/storemvp/internal/pkg/instrument"
	"github.com/storemvp/storemvp/internal/pkg/uid"
	"go.opentelemetry.io/otel/trace"
)

type Store struct {
	mu     sync.Mutex
	orders []entity.Order

	uid uid.StringID
	ins instrument.Instrumentation
}

func NewStore(uid uid.StringID, ins instrument.Instrumentation) *Store {
	return &Store{uid: uid, ins: ins}
}

func (s *Store) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("order.outbound.memory").Start(ctx, name)
}

// AddOrder stores a new order, assigning an id when the record has none.
func (s *Store) AddOrder(ctx context.Context, o entity.Order) (*entity.Order, error) {
	_, span := s.startSpan(ctx, "AddOrder")
	defer span.End()

	if o.ID == "" {
		o.ID = s.uid.Generate()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, o)
	return &o, nil
}

// GetOrder returns the order with the given id, or nil when unknown.
func (s *Store) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	_, span := s.startSpan(ctx, "GetOrder")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			o := s.orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

// ListOrders returns a copy of every stored order.
func (s *Store) ListOrders(ctx context.Context) ([]entity.Order, error) {
	_, span := s.startSpan(ctx, "ListOrders")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

// UpdateOrder replaces the stored order and returns the updated record, or
// nil when the id is unknown. The server-generated number is preserved.
func (s *Store) UpdateOrder(ctx context.Context, o entity.Order) (*entity.Order, error) {
	_, span := s.startSpan(ctx, "UpdateOrder")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == o.ID {
			o.Number = s.orders[i].Number
			o.CreatedAt = s.orders[i].CreatedAt
			s.orders[i] = o
			updated := s.orders[i]
			return &updated, nil
		}
	}
	return nil, nil
}

// DeleteOrder removes the order with the given id and reports whether a
// record was removed.
func (s *Store) DeleteOrder(ctx context.Context, id string) (bool, error) {
	_, span := s.startSpan(ctx, "DeleteOrder")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
