package main

import (
	"log"
	"net/http"

	"github.com/ilanjuiran/RestaurantWebsite/internal/cart"
	"github.com/ilanjuiran/RestaurantWebsite/internal/catalog"
	"github.com/ilanjuiran/RestaurantWebsite/internal/config"
	"github.com/ilanjuiran/RestaurantWebsite/internal/models"
	"github.com/ilanjuiran/RestaurantWebsite/internal/order"
	"github.com/ilanjuiran/RestaurantWebsite/internal/payment"
	"github.com/ilanjuiran/RestaurantWebsite/internal/pricing"
	"github.com/ilanjuiran/RestaurantWebsite/internal/server"
	"github.com/ilanjuiran/RestaurantWebsite/internal/store"

	"gorm.io/gorm"
)

// NewApp wires catalog, stores and handlers into the root handler. Also
// used directly by the end-to-end tests.
func NewApp(dbConn *gorm.DB, cfg config.Config) (http.Handler, error) {
	cat, err := catalog.Load(cfg.MenuFile)
	if err != nil {
		return nil, err
	}
	st := store.NewKVStore(dbConn)
	rates := pricing.Rates{Tax: cfg.TaxRate, Service: cfg.ServiceRate}

	// The cart-changed hook is where a view layer would re-render; the
	// server itself just traces it.
	c, err := cart.New(st, cat, func(lines []models.CartLine) {
		if cfg.Env == "development" {
			log.Printf("cart updated: %d lines", len(lines))
		}
	})
	if err != nil {
		return nil, err
	}
	proc, err := order.NewProcessor(st, c, rates, cfg.InvoiceSeed)
	if err != nil {
		return nil, err
	}
	pay := payment.Config{UPIID: cfg.UPIID, Payee: cfg.UPIPayee}
	return server.New(dbConn, cat, c, proc, rates, pay), nil
}
