package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ilanjuiran/RestaurantWebsite/internal/cart"
	"github.com/ilanjuiran/RestaurantWebsite/internal/httpx"
	"github.com/ilanjuiran/RestaurantWebsite/internal/models"
	"github.com/ilanjuiran/RestaurantWebsite/internal/order"
	"github.com/ilanjuiran/RestaurantWebsite/internal/payment"
	"github.com/ilanjuiran/RestaurantWebsite/internal/pricing"
	"github.com/ilanjuiran/RestaurantWebsite/internal/validation"
)

// CheckoutHandler turns the current cart into an invoice.
type CheckoutHandler struct {
	Processor *order.Processor
	Cart      *cart.Cart
	Rates     pricing.Rates
	Payment   payment.Config
}

func NewCheckoutHandler(p *order.Processor, c *cart.Cart, rates pricing.Rates, pay payment.Config) *CheckoutHandler {
	return &CheckoutHandler{Processor: p, Cart: c, Rates: rates, Payment: pay}
}

type checkoutReq struct {
	PaymentMethod string `json:"paymentMethod"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

// Submit: POST /checkout – returns the created invoice for display and
// printing. Blank contact fields are defaulted by the processor; malformed
// non-blank ones are rejected here, mirroring the form validation the page
// did before submitting.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req checkoutReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	v := validation.Violations{}
	validation.Required("paymentMethod", req.PaymentMethod, v)
	validation.Email("email", req.Email, v)
	validation.Phone("phone", req.Phone, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	method, err := order.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"paymentMethod": "unknown"})
		return
	}
	inv, err := h.Processor.ProcessOrder(method, models.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		if errors.Is(err, order.ErrEmptyCart) {
			httpx.JSONError(w, http.StatusUnprocessableEntity, "empty_cart", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "order_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, inv)
}

// QR: GET /checkout/qr – UPI payment hint for the current cart total.
// Display only: confirming the QR payment still goes through Submit.
func (h *CheckoutHandler) QR(w http.ResponseWriter, r *http.Request) {
	lines := h.Cart.Snapshot()
	if len(lines) == 0 {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "empty_cart", nil)
		return
	}
	total := pricing.Compute(lines, h.Rates).Total
	uri := payment.UPIURI(h.Payment, total, "Restaurant Payment")
	httpx.JSON(w, http.StatusOK, map[string]any{
		"upiUri":   uri,
		"imageUrl": payment.QRImageURL(uri, 250),
		"amount":   total.StringFixed(2),
		"display":  total.StringFixed(0),
	})
}
