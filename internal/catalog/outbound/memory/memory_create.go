package memory

import (
	"context"

	"github.com/storemvp/storemvp/internal/catalog/entity"
)

// AddProduct stores a new product, assigning an id when the record has none.
func (s *Store) AddProduct(ctx context.Context, p entity.Product) (*entity.Product, error) {
	_, span := s.startSpan(ctx, "AddProduct")
	defer span.End()

	if p.ID == "" {
		p.ID = s.uid.Generate()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append(s.products, p)
	return &p, nil
}
