package memory

import "context"

// DeleteProduct removes the product with the given id. It reports whether a
// record was removed.
func (s *Store) DeleteProduct(ctx context.Context, id string) (bool, error) {
	_, span := s.startSpan(ctx, "DeleteProduct")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
