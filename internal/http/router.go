package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/priya1793/shopverse/internal/auth"
	"github.com/priya1793/shopverse/internal/cart"
	"github.com/priya1793/shopverse/internal/config"
	"github.com/priya1793/shopverse/internal/orders"
	"github.com/priya1793/shopverse/internal/wishlist"
)

// Deps bundles everything the router needs.
type Deps struct {
	Catalog  CatalogService
	Cart     *cart.Store
	Orders   *orders.Store
	Wishlist *wishlist.Store
	Auth     *auth.Service
	Flags    config.Flags
	Timeout  time.Duration
	Logger   *zap.Logger
}

// NewRouter assembles the storefront API.
func NewRouter(deps Deps) chi.Router {
	productHandler := NewProductHandler(deps.Catalog, deps.Logger)
	cartHandler := NewCartHandler(deps.Cart, deps.Catalog, deps.Logger)
	checkoutHandler := NewCheckoutHandler(deps.Cart, deps.Orders, deps.Logger)
	ordersHandler := NewOrdersHandler(deps.Orders)
	wishlistHandler := NewWishlistHandler(deps.Wishlist, deps.Catalog, deps.Logger)
	authHandler := NewAuthHandler(deps.Auth, deps.Logger)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDHeader)
	r.Use(middleware.Timeout(deps.Timeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Get("/{id}", productHandler.Get)
			r.With(FeatureGate(deps.Flags.Recommendations)).
				Get("/{id}/related", productHandler.Related)
		})
		r.Get("/categories", productHandler.Categories)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.Get)
			r.Delete("/", cartHandler.Clear)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
			r.With(FeatureGate(deps.Flags.SaveForLater)).
				Post("/items/{product_id}/save", cartHandler.SaveForLater)
			r.With(FeatureGate(deps.Flags.SaveForLater)).
				Post("/items/{product_id}/move", cartHandler.MoveToCart)
			r.With(FeatureGate(deps.Flags.Coupons)).
				Post("/coupon", cartHandler.ApplyCoupon)
			r.With(FeatureGate(deps.Flags.Coupons)).
				Delete("/coupon", cartHandler.RemoveCoupon)
		})

		r.Post("/checkout", checkoutHandler.Checkout)

		r.Route("/orders", func(r chi.Router) {
			r.Use(FeatureGate(deps.Flags.OrderHistory))
			r.Get("/", ordersHandler.List)
			r.Get("/{order_id}", ordersHandler.Get)
			r.Post("/{order_id}/advance", ordersHandler.Advance)
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Use(FeatureGate(deps.Flags.Wishlist))
			r.Get("/", wishlistHandler.List)
			r.Post("/{product_id}", wishlistHandler.Toggle)
			r.Delete("/{product_id}", wishlistHandler.Remove)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/signup", authHandler.Signup)
			r.Post("/logout", authHandler.Logout)
			r.Get("/me", authHandler.Me)
		})
	})

	return r
}
