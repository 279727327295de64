package memory

import (
	"context"

	"github.com/storemvp/storemvp/internal/catalog/entity"
)

// GetProduct returns the product with the given id, or nil when unknown.
func (s *Store) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	_, span := s.startSpan(ctx, "GetProduct")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

// ListProducts returns a copy of every stored product.
func (s *Store) ListProducts(ctx context.Context) ([]entity.Product, error) {
	_, span := s.startSpan(ctx, "ListProducts")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Product, len(s.products))
	copy(out, s.products)
	return out, nil
}
