// Package memory keeps products in process memory. The store is the sample's
// stand-in for a database tier: every operation is atomic under one mutex and
// lookups are linear scans over a slice.
package memory

import (
	"context"
	"sync"

	"github.com/storemvp/storemvp/internal/catalog/entity"
	"github.com/storemvp/storemvp/internal/pkg/instrument"
	"github.com/storemvp/storemvp/internal/pkg/uid"
	"go.opentelemetry.io/otel/trace"
)

type Store struct {
	mu       sync.Mutex
	products []entity.Product

	uid uid.StringID
	ins instrument.Instrumentation
}

func NewStore(uid uid.StringID, ins instrument.Instrumentation) *Store {
	return &Store{uid: uid, ins: ins}
}

func (s *Store) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("catalog.outbound.memory").Start(ctx, name)
}
