package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/priya1793/shopverse/internal/cart"
	"github.com/priya1793/shopverse/internal/catalog"
	"github.com/priya1793/shopverse/internal/domain"
	"github.com/priya1793/shopverse/internal/pricing"
)

const maxQuantity = 99

type CartHandler struct {
	store   *cart.Store
	catalog CatalogService
	logger  *zap.Logger
}

func NewCartHandler(store *cart.Store, catalogSvc CatalogService, logger *zap.Logger) *CartHandler {
	return &CartHandler{store: store, catalog: catalogSvc, logger: logger}
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type ApplyCouponRequestDTO struct {
	Code string `json:"code"`
}

type CartResponse struct {
	Items      []domain.CartItem `json:"items"`
	SavedItems []domain.CartItem `json:"saved_items"`
	Coupon     *domain.Coupon    `json:"coupon,omitempty"`
	Totals     pricing.Totals    `json:"totals"`
}

func (h *CartHandler) cartResponse() CartResponse {
	state := h.store.State()
	return CartResponse{
		Items:      state.ActiveItems(),
		SavedItems: state.SavedItems(),
		Coupon:     state.AppliedCoupon,
		Totals:     h.store.Totals(),
	}
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cartResponse())
}

// AddItem resolves the product and adds one unit to the cart, merging into
// an existing active line for the same product.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), req.ProductID)
	if errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to load product", zap.String("id", req.ProductID), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load product")
		return
	}

	h.store.Dispatch(cart.AddItem{Product: *product, Size: req.Size, Color: req.Color})
	respondJSON(w, http.StatusCreated, h.cartResponse())
}

// UpdateQuantity sets the quantity of a line; zero removes it.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity < 0 || req.Quantity > maxQuantity {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 0 and 99")
		return
	}

	h.store.Dispatch(cart.UpdateQuantity{ProductID: productID, Quantity: req.Quantity})
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.store.Dispatch(cart.RemoveItem{ProductID: chi.URLParam(r, "product_id")})
	respondJSON(w, http.StatusOK, h.cartResponse())
}

// SaveForLater toggles the saved-for-later flag on a line.
func (h *CartHandler) SaveForLater(w http.ResponseWriter, r *http.Request) {
	h.store.Dispatch(cart.ToggleSaveForLater{ProductID: chi.URLParam(r, "product_id")})
	respondJSON(w, http.StatusOK, h.cartResponse())
}

// MoveToCart clears the saved-for-later flag, keeping the quantity.
func (h *CartHandler) MoveToCart(w http.ResponseWriter, r *http.Request) {
	h.store.Dispatch(cart.MoveToCart{ProductID: chi.URLParam(r, "product_id")})
	respondJSON(w, http.StatusOK, h.cartResponse())
}

// ApplyCoupon applies a coupon by code. Unknown codes and unmet minimum
// orders leave the cart unchanged.
func (h *CartHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req ApplyCouponRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Code == "" {
		respondError(w, http.StatusBadRequest, "invalid_code", "code is required")
		return
	}

	err := h.store.ApplyCouponCode(r.Context(), req.Code)
	switch {
	case errors.Is(err, cart.ErrCouponNotFound):
		respondError(w, http.StatusUnprocessableEntity, "invalid_coupon", "invalid coupon code")
		return
	case errors.Is(err, cart.ErrMinOrderNotMet):
		respondError(w, http.StatusUnprocessableEntity, "min_order_not_met", err.Error())
		return
	case err != nil:
		h.logger.Error("failed to apply coupon", zap.String("code", req.Code), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to apply coupon")
		return
	}

	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	h.store.Dispatch(cart.RemoveCoupon{})
	respondJSON(w, http.StatusOK, h.cartResponse())
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.store.Dispatch(cart.ClearCart{})
	respondJSON(w, http.StatusOK, h.cartResponse())
}
