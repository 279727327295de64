// Package memory keeps payments in process memory, guarded by one mutex.
package memory

import (
	"context"
	"sync"

	"github.com/storemvp/storemvp/internal/payment/entity"
	"github.com/storemvp/storemvp/internal/pkg/instrument"
	"github.com/storemvp/storemvp/internal/pkg/uid"
	"go.opentelemetry.io/otel/trace"
)

type Store struct {
	mu       sync.Mutex
	payments []entity.Payment

	uid uid.StringID
	ins instrument.Instrumentation
}

func NewStore(uid uid.StringID, ins instrument.Instrumentation) *Store {
	return &Store{uid: uid, ins: ins}
}

func (s *Store) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("payment.outbound.memory").Start(ctx, name)
}

// AddPayment stores a new payment, assigning an id when the record has none.
func (s *Store) AddPayment(ctx context.Context, p entity.Payment) (*entity.Payment, error) {
	_, span := s.startSpan(ctx, "AddPayment")
	defer span.End()

	if p.ID == "" {
		p.ID = s.uid.Generate()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.payments = append(s.payments, p)
	return &p, nil
}

// GetPayment returns the payment with the given id, or nil when unknown.
func (s *Store) GetPayment(ctx context.Context, id string) (*entity.Payment, error) {
	_, span := s.startSpan(ctx, "GetPayment")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.payments {
		if s.payments[i].ID == id {
			p := s.payments[i]
			return &p, nil
		}
	}
	return nil, nil
}

// ListPayments returns a copy of every stored payment.
func (s *Store) ListPayments(ctx context.Context) ([]entity.Payment, error) {
	_, span := s.startSpan(ctx, "ListPayments")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Payment, len(s.payments))
	copy(out, s.payments)
	return out, nil
}

// UpdatePayment replaces the stored payment and returns the updated record,
// or nil when the id is unknown. The server-generated reference is preserved.
func (s *Store) UpdatePayment(ctx context.Context, p entity.Payment) (*entity.Payment, error) {
	_, span := s.startSpan(ctx, "UpdatePayment")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.payments {
		if s.payments[i].ID == p.ID {
			p.Reference = s.payments[i].Reference
			p.CreatedAt = s.payments[i].CreatedAt
			s.payments[i] = p
			updated := s.payments[i]
			return &updated, nil
		}
	}
	return nil, nil
}

// DeletePayment removes the payment with the given id and reports whether a
// record was removed.
func (s *Store) DeletePayment(ctx context.Context, id string) (bool, error) {
	_, span := s.startSpan(ctx, "DeletePayment")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.payments {
		if s.payments[i].ID == id {
			s.payments = append(s.payments[:i], s.payments[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
