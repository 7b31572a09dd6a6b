package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/priya1793/shopverse/internal/auth"
	"github.com/priya1793/shopverse/internal/cart"
	"github.com/priya1793/shopverse/internal/config"
	"github.com/priya1793/shopverse/internal/domain"
	"github.com/priya1793/shopverse/internal/orders"
	"github.com/priya1793/shopverse/internal/session"
	"github.com/priya1793/shopverse/internal/wishlist"
)

func allFlags() config.Flags {
	return config.Flags{
		Wishlist:        true,
		Coupons:         true,
		SaveForLater:    true,
		Recommendations: true,
		OrderHistory:    true,
	}
}

func newTestRouter(t *testing.T, flags config.Flags) (http.Handler, *catalogMock) {
	t.Helper()

	mock := &catalogMock{
		products: storefrontProducts(),
		coupons: []domain.Coupon{
			{Code: "SAVE10", Type: domain.CouponPercentage, Value: 10},
			{Code: "WELCOME20", Type: domain.CouponPercentage, Value: 20, MinOrder: 50},
		},
	}
	logger := zap.NewNop()

	router := NewRouter(Deps{
		Catalog:  mock,
		Cart:     cart.NewStore(mock),
		Orders:   orders.NewStore(),
		Wishlist: wishlist.NewStore(),
		Auth:     auth.NewService(auth.DemoAccounts(), session.NewMemoryStore(), auth.NopDelayer{}, logger),
		Flags:    flags,
		Timeout:  5 * time.Second,
		Logger:   logger,
	})
	return router, mock
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(method, path, reader)
	router.ServeHTTP(recorder, request)
	return recorder
}

func decodeCart(t *testing.T, recorder *httptest.ResponseRecorder) CartResponse {
	t.Helper()
	var resp CartResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	return resp
}

func TestProducts_ListWithQueryFilters(t *testing.T) {
	router, _ := newTestRouter(t, allFlags())

	recorder := doJSON(t, router, "GET", "/api/v1/products?category=Shoes", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	var resp ProductsResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Classic Runner", resp.Products[0].Name)
}

func TestProducts_GetUnknownIDIs404(t *testing.T) {
	router, _ := newTestRouter(t, allFlags())

	recorder := doJSON(t, router, "GET", "/api/v1/products/999", nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestProducts_Related(t *testing.T) {
	router, _ := newTestRouter(t, allFlags())

	recorder := doJSON(t, router, "GET", "/api/v1/products/1/related", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	var related []domain.Product
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&related))
	require.Len(t, related, 1)
	assert.Equal(t, "3", related[0].ID) // shares the Stride brand
}

func TestCart_AddUpdateRemoveFlow(t *testing.T) {
	router, _ := newTestRouter(t, allFlags())

	recorder := doJSON(t, router, "POST", "/api/v1/cart/items", AddItemRequestDTO{ProductID: "1"})
	require.Equal(t, http.StatusCreated, recorder.Code)
	resp := decodeCart(t, recorder)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Items[0].Quantity)

	recorder = doJSON(t, router, "PUT", "/api/v1/cart/items/1", UpdateQuantityRequestDTO{Quantity: 3})
	require.Equal(t, http.StatusOK, recorder.Code)
	resp = decodeCart(t, recorder)
	assert.Equal(t, 3, resp.Items[0].Quantity)
	assert.InDelta(t, 150.0, resp.Totals.Subtotal, 1e-9)

	// Quantity zero removes the line.
	recorder = doJSON(t, router, "PUT", "/api/v1/cart/items/1", UpdateQuantityRequestDTO{Quantity: 0})
	require.Equal(t, http.StatusOK, recorder.Code)
	resp = decodeCart(t, recorder)
	assert.Empty(t, resp.Items)
}

func TestCart_AddUnknownProductIs404(t *testing.T) {
	router, _ := newTestRouter(t, allFlags())

	recorder := doJSON(t, router, "POST", "/api/v1/cart/items", AddItemRequestDTO{ProductID: "999"})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCart_SaveForLaterAndMoveBack(t *testing.T) {
	router, _ := newTestRouter(t, allFlags())

	doJSON(t, router, "POST", "/api/v1/cart/items", AddItemRequestDTO{ProductID: "1"})

	recorder := doJSON(t, router, "POST", "/api/v1/cart/items/1/save", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	resp := decodeCart(t, recorder)
	assert.Empty(t, resp.Items)
	require.Len(t, resp.SavedItems, 1)

	recorder = doJSON(t, router, "POST", "/api/v1/cart/items/1/move", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	resp = decodeCart(t, recorder)
	require.Len(t, resp.Items, 1)
	assert.Empty(t, resp.SavedItems)
}

func TestCart_CouponFlow(t *testing.T) {
	router, _ := newTestRouter(t, allFlags())

	doJSON(t, router, "POST", "/api/v1/cart/items", AddItemRequestDTO{ProductID: "3"}) // $100

	recorder := doJSON(t, router, "POST", "/api/v1/cart/coupon", ApplyCouponRequestDTO{Code: "save10"})
	require.Equal(t, http.StatusOK, recorder.Code)
	resp := decodeCart(t, recorder)
	require.NotNil(t, resp.Coupon)
	assert.InDelta(t, 10.0, resp.Totals.Discount, 1e-9)

	recorder = doJSON(t, router, "POST", "/api/v1/cart/coupon", ApplyCouponRequestDTO{Code: "NOPE"})
	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	recorder = doJSON(t, router, "DELETE", "/api/v1/cart/coupon", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Nil(t, decodeCart(t, recorder).Coupon)
}

func TestCart_CouponMinOrderNotMet(t *testing.T) {
	router, _ := newTestRouter(t, allFlags())

	// WELCOME20 requires a $50 subtotal; an empty cart falls short.
	recorder := doJSON(t, router, "POST", "/api/v1/cart/coupon", ApplyCouponRequestDTO{Code: "WELCOME20"})

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
}

func TestCheckout_PlacesOrderAndClearsCart(t *testing.T) {
	router, _ := newTestRouter(t, allFlags())

	doJSON(t, router, "POST", "/api/v1/cart/items", AddItemRequestDTO{ProductID: "2"}) // $150

	recorder := doJSON(t, router, "POST", "/api/v1/checkout", CheckoutRequestDTO{
		ShippingAddress: domain.ShippingAddress{
			FullName: "Demo User", Address: "1 Main St", City: "Springfield", ZipCode: "62701",
		},
	})
	require.Equal(t, http.StatusCreated, recorder.Code)

	var order domain.Order
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&order))
	assert.Equal(t, domain.OrderStatusProcessing, order.Status)
	assert.InDelta(t, 150.0, order.Subtotal, 1e-9)
	assert.Zero(t, order.Shipping)

	// Cart is empty afterwards.
	resp := decodeCart(t, doJSON(t, router, "GET", "/api/v1/cart", nil))
	assert.Empty(t, resp.Items)
	assert.Nil(t, resp.Coupon)

	// Order shows up in history and by id.
	recorder = doJSON(t, router, "GET", "/api/v1/orders/"+order.ID, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestOrders_AdvanceStopsAtDelivered(t *testing.T) {
	router, _ := newTestRouter(t, allFlags())

	doJSON(t, router, "POST", "/api/v1/cart/items", AddItemRequestDTO{ProductID: "1"})
	placed := doJSON(t, router, "POST", "/api/v1/checkout", CheckoutRequestDTO{
		ShippingAddress: domain.ShippingAddress{
			FullName: "Demo User", Address: "1 Main St", City: "Springfield", ZipCode: "62701",
		},
	})
	require.Equal(t, http.StatusCreated, placed.Code)
	var order domain.Order
	require.NoError(t, json.NewDecoder(placed.Body).Decode(&order))

	for _, want := range []domain.OrderStatus{domain.OrderStatusShipped, domain.OrderStatusDelivered} {
		recorder := doJSON(t, router, "POST", "/api/v1/orders/"+order.ID+"/advance", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		var advanced domain.Order
		require.NoError(t, json.NewDecoder(recorder.Body).Decode(&advanced))
		assert.Equal(t, want, advanced.Status)
	}

	recorder := doJSON(t, router, "POST", "/api/v1/orders/"+order.ID+"/advance", nil)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestCheckout_EmptyCartIs400(t *testing.T) {
	router, _ := newTestRouter(t, allFlags())

	recorder := doJSON(t, router, "POST", "/api/v1/checkout", CheckoutRequestDTO{
		ShippingAddress: domain.ShippingAddress{
			FullName: "Demo User", Address: "1 Main St", City: "Springfield", ZipCode: "62701",
		},
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestOrders_UnknownIDIs404(t *testing.T) {
	router, _ := newTestRouter(t, allFlags())

	recorder := doJSON(t, router, "GET", "/api/v1/orders/ORD-NOPE", nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestWishlist_ToggleFlow(t *testing.T) {
	router, _ := newTestRouter(t, allFlags())

	recorder := doJSON(t, router, "POST", "/api/v1/wishlist/1", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	var toggle WishlistToggleResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&toggle))
	assert.True(t, toggle.InWishlist)

	recorder = doJSON(t, router, "POST", "/api/v1/wishlist/1", nil)
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&toggle))
	assert.False(t, toggle.InWishlist)
}

func TestAuth_LoginMeLogout(t *testing.T) {
	router, _ := newTestRouter(t, allFlags())

	recorder := doJSON(t, router, "POST", "/api/v1/auth/login",
		LoginRequestDTO{Email: "demo@shopverse.com", Password: "password123"})
	require.Equal(t, http.StatusOK, recorder.Code)

	var user domain.User
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&user))
	assert.Equal(t, "Demo User", user.Name)

	request := httptest.NewRequest("GET", "/api/v1/auth/me", nil)
	request.Header.Set("Authorization", "Bearer "+user.Token)
	me := httptest.NewRecorder()
	router.ServeHTTP(me, request)
	assert.Equal(t, http.StatusOK, me.Code)

	recorder = doJSON(t, router, "POST", "/api/v1/auth/logout", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	request = httptest.NewRequest("GET", "/api/v1/auth/me", nil)
	request.Header.Set("Authorization", "Bearer "+user.Token)
	me = httptest.NewRecorder()
	router.ServeHTTP(me, request)
	assert.Equal(t, http.StatusUnauthorized, me.Code)
}

func TestFeatureGates_DisabledRoutesAre404(t *testing.T) {
	flags := allFlags()
	flags.Wishlist = false
	flags.Coupons = false
	router, _ := newTestRouter(t, flags)

	recorder := doJSON(t, router, "GET", "/api/v1/wishlist", nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	recorder = doJSON(t, router, "POST", "/api/v1/cart/coupon", ApplyCouponRequestDTO{Code: "SAVE10"})
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	// Ungated routes keep working.
	recorder = doJSON(t, router, "GET", "/api/v1/products", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t, allFlags())

	recorder := doJSON(t, router, "GET", "/health", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
