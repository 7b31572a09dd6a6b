// Package cart holds the reducer-style cart state machine. Every action
// produces a complete new CartState from the previous one; prior states are
// never mutated in place.
package cart

import "github.com/priya1793/shopverse/internal/domain"

// Action is a cart state transition request.
type Action interface {
	isAction()
}

type AddItem struct {
	Product domain.Product
	Size    string
	Color   string
}

type RemoveItem struct {
	ProductID string
}

type UpdateQuantity struct {
	ProductID string
	Quantity  int
}

type ToggleSaveForLater struct {
	ProductID string
}

type MoveToCart struct {
	ProductID string
}

type ApplyCoupon struct {
	Coupon domain.Coupon
}

type RemoveCoupon struct{}

type ClearCart struct{}

func (AddItem) isAction()            {}
func (RemoveItem) isAction()         {}
func (UpdateQuantity) isAction()     {}
func (ToggleSaveForLater) isAction() {}
func (MoveToCart) isAction()         {}
func (ApplyCoupon) isAction()        {}
func (RemoveCoupon) isAction()       {}
func (ClearCart) isAction()          {}

// Apply computes the successor state for the given action. Unknown actions
// return the state unchanged.
func Apply(state domain.CartState, action Action) domain.CartState {
	switch a := action.(type) {
	case AddItem:
		return addItem(state, a)
	case RemoveItem:
		return withItems(state, removeLines(state.Items, a.ProductID))
	case UpdateQuantity:
		if a.Quantity <= 0 {
			return withItems(state, removeLines(state.Items, a.ProductID))
		}
		return withItems(state, mapLines(state.Items, a.ProductID, func(it domain.CartItem) domain.CartItem {
			it.Quantity = a.Quantity
			return it
		}))
	case ToggleSaveForLater:
		// Toggling resets quantity to 1, matching the storefront's behavior.
		return withItems(state, mapLines(state.Items, a.ProductID, func(it domain.CartItem) domain.CartItem {
			it.SavedForLater = !it.SavedForLater
			it.Quantity = 1
			return it
		}))
	case MoveToCart:
		return withItems(state, mapLines(state.Items, a.ProductID, func(it domain.CartItem) domain.CartItem {
			it.SavedForLater = false
			return it
		}))
	case ApplyCoupon:
		coupon := a.Coupon
		return domain.CartState{Items: copyItems(state.Items), AppliedCoupon: &coupon}
	case RemoveCoupon:
		return domain.CartState{Items: copyItems(state.Items)}
	case ClearCart:
		return domain.CartState{}
	default:
		return state
	}
}

func addItem(state domain.CartState, a AddItem) domain.CartState {
	items := copyItems(state.Items)
	for i, it := range items {
		if it.Product.ID == a.Product.ID && !it.SavedForLater {
			items[i].Quantity++
			return withItems(state, items)
		}
	}
	items = append(items, domain.CartItem{
		Product:       a.Product,
		Quantity:      1,
		SelectedSize:  a.Size,
		SelectedColor: a.Color,
	})
	return withItems(state, items)
}

func removeLines(items []domain.CartItem, productID string) []domain.CartItem {
	result := make([]domain.CartItem, 0, len(items))
	for _, it := range items {
		if it.Product.ID != productID {
			result = append(result, it)
		}
	}
	return result
}

func mapLines(items []domain.CartItem, productID string, fn func(domain.CartItem) domain.CartItem) []domain.CartItem {
	result := copyItems(items)
	for i, it := range result {
		if it.Product.ID == productID {
			result[i] = fn(it)
		}
	}
	return result
}

func copyItems(items []domain.CartItem) []domain.CartItem {
	if items == nil {
		return nil
	}
	cp := make([]domain.CartItem, len(items))
	copy(cp, items)
	return cp
}

func withItems(state domain.CartState, items []domain.CartItem) domain.CartState {
	next := domain.CartState{Items: items}
	if state.AppliedCoupon != nil {
		coupon := *state.AppliedCoupon
		next.AppliedCoupon = &coupon
	}
	return next
}
