package memory

import (
	"context"

	"github.com/storemvp/storemvp/internal/catalog/entity"
)

// UpdateProduct replaces the writable fields of the stored product and
// returns the updated record, or nil when the id is unknown.
func (s *Store) UpdateProduct(ctx context.Context, p entity.Product) (*entity.Product, error) {
	_, span := s.startSpan(ctx, "UpdateProduct")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == p.ID {
			p.CreatedAt = s.products[i].CreatedAt
			s.products[i] = p
			updated := s.products[i]
			return &updated, nil
		}
	}
	return nil, nil
}
