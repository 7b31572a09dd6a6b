// Package wishlist keeps the session's wishlist in memory. Insertion order
// is preserved so the UI can show items in the order they were added.
package wishlist

import (
	"sync"

	"github.com/priya1793/shopverse/internal/domain"
)

type Store struct {
	mu    sync.RWMutex
	items []domain.Product
}

func NewStore() *Store {
	return &Store{}
}

// Add puts the product on the wishlist; adding a product already present is
// a no-op.
func (s *Store) Add(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(p.ID) >= 0 {
		return
	}
	s.items = append(s.items, p)
}

// Remove takes the product off the wishlist. Unknown ids are ignored.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
}

// Toggle adds the product if absent and removes it if present, reporting
// whether the product is on the wishlist afterwards.
func (s *Store) Toggle(p domain.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(p.ID); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
		return false
	}
	s.items = append(s.items, p)
	return true
}

// Contains reports whether the product is on the wishlist.
func (s *Store) Contains(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(productID) >= 0
}

// Items returns a copy of the wishlist in insertion order.
func (s *Store) Items() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.Product, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Store) indexOf(productID string) int {
	for i, p := range s.items {
		if p.ID == productID {
			return i
		}
	}
	return -1
}
