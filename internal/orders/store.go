// Package orders keeps the session's order history in memory. Orders are
// appended at checkout and never removed; only their status moves, forward.
package orders

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/priya1793/shopverse/internal/domain"
	"github.com/priya1793/shopverse/internal/pricing"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrAlreadyFinal  = errors.New("order already delivered")
	ErrNoActiveItems = errors.New("no active items to order")
)

// Clock abstracts time so order ids and dates are deterministic in tests.
type Clock func() time.Time

type Store struct {
	mu     sync.RWMutex
	orders []domain.Order
	now    Clock
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

// NewStoreWithClock is used by tests that need deterministic ids and dates.
func NewStoreWithClock(now Clock) *Store {
	return &Store{now: now}
}

// PlaceParams carries everything frozen into an order at checkout.
type PlaceParams struct {
	Items           []domain.CartItem
	Totals          pricing.Totals
	ShippingAddress domain.ShippingAddress
	DeliveryMethod  string
	PaymentMethod   string
}

// Place snapshots the given cart lines into a new processing order and
// prepends it to the history (newest first).
func (s *Store) Place(params PlaceParams) (domain.Order, error) {
	if len(params.Items) == 0 {
		return domain.Order{}, ErrNoActiveItems
	}

	items := make([]domain.CartItem, len(params.Items))
	copy(items, params.Items)

	now := s.now()
	order := domain.Order{
		ID:              orderID(now),
		Items:           items,
		Subtotal:        params.Totals.Subtotal,
		Tax:             params.Totals.Tax,
		Shipping:        params.Totals.Shipping,
		Discount:        params.Totals.Discount,
		Total:           params.Totals.Total,
		Status:          domain.OrderStatusProcessing,
		Date:            now.Format(time.RFC3339),
		ShippingAddress: params.ShippingAddress,
		DeliveryMethod:  params.DeliveryMethod,
		PaymentMethod:   params.PaymentMethod,
	}

	s.mu.Lock()
	s.orders = append([]domain.Order{order}, s.orders...)
	s.mu.Unlock()

	return order, nil
}

// Get returns the order with the given id or ErrOrderNotFound.
func (s *Store) Get(id string) (domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, ErrOrderNotFound
}

// List returns the order history, newest first.
func (s *Store) List() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]domain.Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}

// Advance moves the order to its next status. Delivered orders cannot move.
func (s *Store) Advance(id string) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, o := range s.orders {
		if o.ID != id {
			continue
		}
		next, ok := o.Status.Next()
		if !ok {
			return domain.Order{}, ErrAlreadyFinal
		}
		s.orders[i].Status = next
		return s.orders[i], nil
	}
	return domain.Order{}, ErrOrderNotFound
}

// orderID matches the storefront format: ORD- plus an uppercase base-36
// millisecond timestamp.
func orderID(now time.Time) string {
	return "ORD-" + strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
}
