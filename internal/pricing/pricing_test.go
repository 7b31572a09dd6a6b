package pricing

import (
	"testing"

	"github.com/priya1793/shopverse/internal/domain"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func item(price float64, qty int) domain.CartItem {
	return domain.CartItem{
		Product:  domain.Product{ID: "1", Name: "test", Price: price},
		Quantity: qty,
	}
}

func TestComputeTotals_EmptyCart(t *testing.T) {
	totals := ComputeTotals(nil, nil)

	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.Discount)
	assert.Zero(t, totals.Tax)
	assert.Equal(t, FlatShippingFee, totals.Shipping)
	assert.InDelta(t, FlatShippingFee, totals.Total, eps)
	assert.Zero(t, totals.ItemCount)
}

func TestComputeTotals_NoCoupon(t *testing.T) {
	// total == S*1.08 + (S>100 ? 0 : 9.99)
	cases := []struct {
		name     string
		subtotal float64
	}{
		{"under free shipping", 50},
		{"at threshold still pays shipping", 100},
		{"over threshold ships free", 150},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			totals := ComputeTotals([]domain.CartItem{item(tc.subtotal, 1)}, nil)

			shipping := FlatShippingFee
			if tc.subtotal > FreeShippingThreshold {
				shipping = 0
			}
			assert.InDelta(t, tc.subtotal, totals.Subtotal, eps)
			assert.InDelta(t, tc.subtotal*1.08+shipping, totals.Total, eps)
		})
	}
}

func TestComputeTotals_PercentageCoupon(t *testing.T) {
	coupon := &domain.Coupon{Code: "SAVE10", Type: domain.CouponPercentage, Value: 10}
	totals := ComputeTotals([]domain.CartItem{item(80, 1)}, coupon)

	assert.InDelta(t, 8.0, totals.Discount, eps)
	assert.InDelta(t, (80-8)*TaxRate, totals.Tax, eps)
}

func TestComputeTotals_FixedCoupon(t *testing.T) {
	coupon := &domain.Coupon{Code: "FLAT15", Type: domain.CouponFixed, Value: 15}
	totals := ComputeTotals([]domain.CartItem{item(80, 1)}, coupon)

	assert.InDelta(t, 15.0, totals.Discount, eps)
}

func TestComputeTotals_WorkedExample(t *testing.T) {
	// One item at $60 qty 2 with SAVE10: subtotal 120, discount 12,
	// free shipping, tax (120-12)*0.08 = 8.64, total 116.64.
	coupon := &domain.Coupon{Code: "SAVE10", Type: domain.CouponPercentage, Value: 10}
	totals := ComputeTotals([]domain.CartItem{item(60, 2)}, coupon)

	assert.InDelta(t, 120.0, totals.Subtotal, eps)
	assert.InDelta(t, 12.0, totals.Discount, eps)
	assert.Zero(t, totals.Shipping)
	assert.InDelta(t, 8.64, totals.Tax, eps)
	assert.InDelta(t, 116.64, totals.Total, eps)
	assert.Equal(t, 2, totals.ItemCount)
}

func TestComputeTotals_FixedCouponLargerThanSubtotal(t *testing.T) {
	// Discount clamps to the subtotal, so tax never goes negative.
	coupon := &domain.Coupon{Code: "BIG", Type: domain.CouponFixed, Value: 500}
	totals := ComputeTotals([]domain.CartItem{item(20, 1)}, coupon)

	assert.InDelta(t, 20.0, totals.Discount, eps)
	assert.Zero(t, totals.Tax)
	assert.InDelta(t, FlatShippingFee, totals.Total, eps)
}

func TestComputeTotals_SavedItemsExcluded(t *testing.T) {
	saved := item(999, 1)
	saved.SavedForLater = true
	state := domain.CartState{Items: []domain.CartItem{item(30, 2), saved}}

	totals := ComputeTotals(state.ActiveItems(), nil)

	assert.InDelta(t, 60.0, totals.Subtotal, eps)
	assert.Equal(t, 2, totals.ItemCount)
}

func TestDiscount_NilCoupon(t *testing.T) {
	assert.Zero(t, Discount(100, nil))
}
