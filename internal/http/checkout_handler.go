package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/priya1793/shopverse/internal/cart"
	"github.com/priya1793/shopverse/internal/domain"
	"github.com/priya1793/shopverse/internal/orders"
)

type CheckoutHandler struct {
	store  *cart.Store
	orders *orders.Store
	logger *zap.Logger
}

func NewCheckoutHandler(cartStore *cart.Store, orderStore *orders.Store, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{store: cartStore, orders: orderStore, logger: logger}
}

type CheckoutRequestDTO struct {
	ShippingAddress domain.ShippingAddress `json:"shipping_address"`
	DeliveryMethod  string                 `json:"delivery_method"`
	PaymentMethod   string                 `json:"payment_method"`
}

// Checkout freezes the active cart into an order and clears the cart (items
// and coupon together) on success.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ShippingAddress.FullName == "" || req.ShippingAddress.Address == "" ||
		req.ShippingAddress.City == "" || req.ShippingAddress.ZipCode == "" {
		respondError(w, http.StatusBadRequest, "invalid_address", "shipping address is incomplete")
		return
	}
	if req.DeliveryMethod == "" {
		req.DeliveryMethod = "standard"
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = "card"
	}

	state := h.store.State()
	order, err := h.orders.Place(orders.PlaceParams{
		Items:           state.ActiveItems(),
		Totals:          h.store.Totals(),
		ShippingAddress: req.ShippingAddress,
		DeliveryMethod:  req.DeliveryMethod,
		PaymentMethod:   req.PaymentMethod,
	})
	if errors.Is(err, orders.ErrNoActiveItems) {
		respondError(w, http.StatusBadRequest, "empty_cart", "no active items to check out")
		return
	}
	if err != nil {
		h.logger.Error("failed to place order", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to place order")
		return
	}

	h.store.Dispatch(cart.ClearCart{})
	h.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Float64("total", order.Total),
		zap.Int("lines", len(order.Items)))

	respondJSON(w, http.StatusCreated, order)
}
