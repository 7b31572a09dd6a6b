package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/priya1793/shopverse/internal/domain"
	"github.com/priya1793/shopverse/internal/pricing"
)

var (
	ErrCouponNotFound = errors.New("coupon code not found")
	ErrMinOrderNotMet = errors.New("minimum order for coupon not met")
)

// CouponSource looks up coupon definitions by code, case-insensitively.
// A nil coupon with a nil error means no such code exists.
type CouponSource interface {
	GetCoupon(ctx context.Context, code string) (*domain.Coupon, error)
}

// Listener is notified with the complete new state after each transition.
type Listener func(domain.CartState)

// Store owns the session's cart state. Transitions go through Dispatch and
// replace the state atomically; derived values are recomputed from the
// current state on every read, never cached.
type Store struct {
	mu        sync.RWMutex
	state     domain.CartState
	coupons   CouponSource
	listeners []Listener
}

func NewStore(coupons CouponSource) *Store {
	return &Store{coupons: coupons}
}

// Subscribe registers a listener for state changes. Listeners run
// synchronously on the dispatching goroutine, in registration order.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Dispatch applies the action and notifies listeners with the new state.
func (s *Store) Dispatch(action Action) domain.CartState {
	s.mu.Lock()
	s.state = Apply(s.state, action)
	next := s.state
	listeners := s.listeners
	s.mu.Unlock()

	for _, l := range listeners {
		l(next)
	}
	return next
}

// State returns the current cart state.
func (s *Store) State() domain.CartState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Totals prices the active items under the applied coupon.
func (s *Store) Totals() pricing.Totals {
	state := s.State()
	return pricing.ComputeTotals(state.ActiveItems(), state.AppliedCoupon)
}

// ApplyCouponCode resolves the code against the coupon source and applies it,
// replacing any existing coupon. The state is unchanged when the code is
// unknown or the active subtotal is below the coupon's minimum order.
func (s *Store) ApplyCouponCode(ctx context.Context, code string) error {
	coupon, err := s.coupons.GetCoupon(ctx, code)
	if err != nil {
		return fmt.Errorf("look up coupon %q: %w", code, err)
	}
	if coupon == nil {
		return ErrCouponNotFound
	}

	subtotal := s.Totals().Subtotal
	if coupon.MinOrder > 0 && subtotal < coupon.MinOrder {
		return fmt.Errorf("%w: need $%.2f", ErrMinOrderNotMet, coupon.MinOrder)
	}

	s.Dispatch(ApplyCoupon{Coupon: *coupon})
	return nil
}
