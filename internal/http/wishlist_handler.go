package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/priya1793/shopverse/internal/catalog"
	"github.com/priya1793/shopverse/internal/wishlist"
)

type WishlistHandler struct {
	wishlist *wishlist.Store
	catalog  CatalogService
	logger   *zap.Logger
}

func NewWishlistHandler(store *wishlist.Store, catalogSvc CatalogService, logger *zap.Logger) *WishlistHandler {
	return &WishlistHandler{wishlist: store, catalog: catalogSvc, logger: logger}
}

type WishlistToggleResponse struct {
	InWishlist bool `json:"in_wishlist"`
}

func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.wishlist.Items())
}

// Toggle adds the product if absent, removes it if present.
func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "product_id")

	product, err := h.catalog.GetProduct(r.Context(), id)
	if errors.Is(err, catalog.ErrProductNotFound) {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}
	if err != nil {
		h.logger.Error("failed to load product", zap.String("id", id), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load product")
		return
	}

	respondJSON(w, http.StatusOK, WishlistToggleResponse{InWishlist: h.wishlist.Toggle(*product)})
}

func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	h.wishlist.Remove(chi.URLParam(r, "product_id"))
	respondJSON(w, http.StatusOK, h.wishlist.Items())
}
