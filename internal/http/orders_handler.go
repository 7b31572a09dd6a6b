package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/priya1793/shopverse/internal/orders"
)

type OrdersHandler struct {
	orders *orders.Store
}

func NewOrdersHandler(store *orders.Store) *OrdersHandler {
	return &OrdersHandler{orders: store}
}

func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.orders.List())
}

func (h *OrdersHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.Get(chi.URLParam(r, "order_id"))
	if errors.Is(err, orders.ErrOrderNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "order not found")
		return
	}
	respondJSON(w, http.StatusOK, order)
}

// Advance moves an order one step through processing → shipped → delivered.
// There is no fulfilment backend, so the transition is driven by hand.
func (h *OrdersHandler) Advance(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.Advance(chi.URLParam(r, "order_id"))
	switch {
	case errors.Is(err, orders.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, "not_found", "order not found")
		return
	case errors.Is(err, orders.ErrAlreadyFinal):
		respondError(w, http.StatusConflict, "already_delivered", "order already delivered")
		return
	}
	respondJSON(w, http.StatusOK, order)
}
