// Package pricing derives cart totals from active line items and an optional
// coupon. Everything here is a pure function over the inputs.
package pricing

import (
	"math"

	"github.com/priya1793/shopverse/internal/domain"
)

const (
	// FreeShippingThreshold is the subtotal above which shipping is free.
	FreeShippingThreshold = 100.0

	// FlatShippingFee applies to orders at or under the threshold.
	FlatShippingFee = 9.99

	// TaxRate is the flat rate applied to the post-discount subtotal.
	TaxRate = 0.08
)

// Totals is the full price breakdown for a cart.
type Totals struct {
	Subtotal  float64 `json:"subtotal"`
	Discount  float64 `json:"discount"`
	Shipping  float64 `json:"shipping"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}

// ComputeTotals prices the given active items under the given coupon, which
// may be nil. Discount is clamped to the subtotal so tax is never computed on
// a negative base.
func ComputeTotals(activeItems []domain.CartItem, coupon *domain.Coupon) Totals {
	var subtotal float64
	var count int
	for _, it := range activeItems {
		subtotal += it.Product.Price * float64(it.Quantity)
		count += it.Quantity
	}

	discount := Discount(subtotal, coupon)
	shipping := FlatShippingFee
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}
	tax := (subtotal - discount) * TaxRate
	total := math.Max(0, subtotal-discount+tax+shipping)

	return Totals{
		Subtotal:  subtotal,
		Discount:  discount,
		Shipping:  shipping,
		Tax:       tax,
		Total:     total,
		ItemCount: count,
	}
}

// Discount returns the amount the coupon takes off the given subtotal,
// clamped to [0, subtotal].
func Discount(subtotal float64, coupon *domain.Coupon) float64 {
	if coupon == nil {
		return 0
	}
	var d float64
	switch coupon.Type {
	case domain.CouponPercentage:
		d = subtotal * coupon.Value / 100
	case domain.CouponFixed:
		d = coupon.Value
	}
	return math.Min(math.Max(d, 0), subtotal)
}
