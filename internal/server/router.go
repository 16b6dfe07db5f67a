package server

import (
	"net/http"

	"github.com/ilanjuiran/RestaurantWebsite/internal/cart"
	"github.com/ilanjuiran/RestaurantWebsite/internal/catalog"
	"github.com/ilanjuiran/RestaurantWebsite/internal/handlers"
	"github.com/ilanjuiran/RestaurantWebsite/internal/httpx"
	"github.com/ilanjuiran/RestaurantWebsite/internal/order"
	"github.com/ilanjuiran/RestaurantWebsite/internal/payment"
	"github.com/ilanjuiran/RestaurantWebsite/internal/pricing"

	"gorm.io/gorm"
)

// New constructs the root http.Handler with all routes applied.
func New(db *gorm.DB, cat *catalog.Catalog, c *cart.Cart, proc *order.Processor, rates pricing.Rates, pay payment.Config) http.Handler {
	mux := http.NewServeMux()

	// --- Health endpoints ---
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		// Lightweight DB check (SELECT 1) – ignore detailed errors in body
		if db != nil {
			if err := db.Exec("SELECT 1").Error; err != nil {
				httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
				return
			}
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mh := handlers.NewMenuHandler(cat)
	mux.HandleFunc("/menu", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			methodNotAllowed(w, "GET")
			return
		}
		mh.List(w, r)
	})

	ch := handlers.NewCartHandler(c, rates)
	mux.HandleFunc("/cart", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			methodNotAllowed(w, "GET")
			return
		}
		ch.Get(w, r)
	})
	mux.HandleFunc("/cart/items", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			methodNotAllowed(w, "POST")
			return
		}
		ch.Add(w, r)
	})
	mux.HandleFunc("/cart/items/", func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodDelete:
			ch.Remove(w, r)
		case r.Method == http.MethodPost && r.URL.Path == "/cart/items/delete":
			ch.Remove(w, r)
		case r.Method == http.MethodPost && r.URL.Path == "/cart/items/quantity":
			ch.Quantity(w, r)
		default:
			methodNotAllowed(w, "POST,DELETE")
		}
	})
	mux.HandleFunc("/cart/clear", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			methodNotAllowed(w, "POST")
			return
		}
		ch.Clear(w, r)
	})

	oh := handlers.NewCheckoutHandler(proc, c, rates, pay)
	mux.HandleFunc("/checkout", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			methodNotAllowed(w, "POST")
			return
		}
		oh.Submit(w, r)
	})
	mux.HandleFunc("/checkout/qr", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			methodNotAllowed(w, "GET")
			return
		}
		oh.QR(w, r)
	})

	rh := handlers.NewReportHandler(proc)
	mux.HandleFunc("/report", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			methodNotAllowed(w, "GET")
			return
		}
		rh.Report(w, r)
	})
	mux.HandleFunc("/report/export", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			methodNotAllowed(w, "GET")
			return
		}
		rh.Export(w, r)
	})

	return mux
}

func methodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
}
