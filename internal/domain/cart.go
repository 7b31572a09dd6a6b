package domain

// CartItem wraps a catalog product with the shopper's selection. At most one
// active (not saved-for-later) line exists per product id.
type CartItem struct {
	Product       Product `json:"product"`
	Quantity      int     `json:"quantity"`
	SelectedSize  string  `json:"selected_size,omitempty"`
	SelectedColor string  `json:"selected_color,omitempty"`
	SavedForLater bool    `json:"saved_for_later,omitempty"`
}

// CartState is the whole cart: every line (active and saved) plus the applied
// coupon, if any. Transitions replace the state wholesale; a CartState handed
// out is never mutated afterwards.
type CartState struct {
	Items         []CartItem `json:"items"`
	AppliedCoupon *Coupon    `json:"applied_coupon,omitempty"`
}

// ActiveItems returns the lines counted in totals and item count.
func (s CartState) ActiveItems() []CartItem {
	var items []CartItem
	for _, it := range s.Items {
		if !it.SavedForLater {
			items = append(items, it)
		}
	}
	return items
}

// SavedItems returns the saved-for-later lines.
func (s CartState) SavedItems() []CartItem {
	var items []CartItem
	for _, it := range s.Items {
		if it.SavedForLater {
			items = append(items, it)
		}
	}
	return items
}
