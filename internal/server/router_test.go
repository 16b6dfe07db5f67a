package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ilanjuiran/RestaurantWebsite/internal/cart"
	"github.com/ilanjuiran/RestaurantWebsite/internal/catalog"
	"github.com/ilanjuiran/RestaurantWebsite/internal/models"
	"github.com/ilanjuiran/RestaurantWebsite/internal/order"
	"github.com/ilanjuiran/RestaurantWebsite/internal/payment"
	"github.com/ilanjuiran/RestaurantWebsite/internal/pricing"
	"github.com/ilanjuiran/RestaurantWebsite/internal/store"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) http.Handler {
	t.Helper()
	dsn := fmt.Sprintf("file:router_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	cat, err := catalog.Parse([]byte(`
items:
  - id: 1
    name: Thali
    price: 100
    category: mains
`))
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	st := store.NewKVStore(db)
	c, err := cart.New(st, cat, nil)
	if err != nil {
		t.Fatalf("cart: %v", err)
	}
	rates := pricing.DefaultRates()
	proc, err := order.NewProcessor(st, c, rates, 1000)
	if err != nil {
		t.Fatalf("processor: %v", err)
	}
	return New(db, cat, c, proc, rates, payment.Config{UPIID: "a@b", Payee: "X"})
}

func TestHealthEndpoints(t *testing.T) {
	app := setupRouter(t)
	for _, path := range []string{"/health", "/healthz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		app.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 got %d", path, w.Code)
		}
	}
}

func TestRouterMethodGuards(t *testing.T) {
	app := setupRouter(t)
	cases := []struct {
		method, path string
	}{
		{http.MethodPost, "/menu"},
		{http.MethodDelete, "/cart"},
		{http.MethodGet, "/cart/items"},
		{http.MethodGet, "/cart/clear"},
		{http.MethodGet, "/checkout"},
		{http.MethodPost, "/report"},
		{http.MethodPut, "/cart/items/1"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()
		app.ServeHTTP(w, req)
		if w.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s %s: expected 405 got %d", tc.method, tc.path, w.Code)
		}
	}
}

func TestRouterCartFlow(t *testing.T) {
	app := setupRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"id":1}`))
	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("add: expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	req = httptest.NewRequest(http.MethodDelete, "/cart/items/1", nil)
	w = httptest.NewRecorder()
	app.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"lines":[]`) {
		t.Fatalf("cart not empty after delete: %s", w.Body.String())
	}
}
