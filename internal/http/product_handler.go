package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/priya1793/shopverse/internal/catalog"
	"github.com/priya1793/shopverse/internal/domain"
	"github.com/priya1793/shopverse/internal/filter"
)

// CatalogService is the slice of the catalog the product handlers need.
type CatalogService interface {
	Products(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

type ProductHandler struct {
	catalog CatalogService
	logger  *zap.Logger
}

func NewProductHandler(catalog CatalogService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{catalog: catalog, logger: logger}
}

type ProductsResponse struct {
	Products []domain.Product   `json:"products"`
	Total    int                `json:"total"`
	Filters  domain.FilterState `json:"filters"`
}

// List filters and sorts the catalog according to the query string. The
// `category` and `search` parameters pre-seed the listing the same way the
// storefront URL does.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.Products(r.Context())
	if err != nil {
		h.logger.Error("failed to load catalog", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load catalog")
		return
	}

	filters, err := filtersFromQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_filter", err.Error())
		return
	}

	result := filter.Apply(products, filters)
	respondJSON(w, http.StatusOK, ProductsResponse{
		Products: result,
		Total:    len(result),
		Filters:  filters,
	})
}

// Get returns a single product, or 404 when the id is unknown.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

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

	respondJSON(w, http.StatusOK, product)
}

// Related returns up to `limit` products sharing the product's category or
// brand, in catalog order.
func (h *ProductHandler) Related(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

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

	limit := 4
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(w, http.StatusBadRequest, "invalid_limit", "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	products, err := h.catalog.Products(r.Context())
	if err != nil {
		h.logger.Error("failed to load catalog", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load catalog")
		return
	}

	respondJSON(w, http.StatusOK, filter.Related(products, *product, limit))
}

// Categories returns the category descriptors.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		h.logger.Error("failed to load categories", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load categories")
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

func filtersFromQuery(r *http.Request) (domain.FilterState, error) {
	q := r.URL.Query()
	f := filter.DefaultFilters()

	f.Search = q.Get("search")
	f.Categories = splitParam(q.Get("categories"))
	// `category` is the single-value pre-seed used by category tiles.
	if c := q.Get("category"); c != "" {
		f.Categories = append(f.Categories, c)
	}
	f.Brands = splitParam(q.Get("brands"))
	f.Sizes = splitParam(q.Get("sizes"))

	for _, raw := range splitParam(q.Get("ratings")) {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, errors.New("ratings must be numbers")
		}
		f.Ratings = append(f.Ratings, rating)
	}

	if raw := q.Get("min_price"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, errors.New("min_price must be a number")
		}
		f.PriceRange[0] = min
	}
	if raw := q.Get("max_price"); raw != "" {
		max, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, errors.New("max_price must be a number")
		}
		f.PriceRange[1] = max
	}

	if raw := q.Get("sort"); raw != "" {
		switch mode := domain.SortMode(raw); mode {
		case domain.SortRelevance, domain.SortPriceLow, domain.SortPriceHigh,
			domain.SortRating, domain.SortNewest:
			f.SortBy = mode
		default:
			return f, errors.New("unknown sort mode")
		}
	}

	return f, nil
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
