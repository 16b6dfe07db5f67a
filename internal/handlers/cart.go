package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/ilanjuiran/RestaurantWebsite/internal/cart"
	"github.com/ilanjuiran/RestaurantWebsite/internal/httpx"
	"github.com/ilanjuiran/RestaurantWebsite/internal/models"
	"github.com/ilanjuiran/RestaurantWebsite/internal/pricing"
)

// CartHandler exposes the cart store to the view layer: current lines plus
// computed totals after every read or mutation.
type CartHandler struct {
	Cart  *cart.Cart
	Rates pricing.Rates
}

func NewCartHandler(c *cart.Cart, rates pricing.Rates) *CartHandler {
	return &CartHandler{Cart: c, Rates: rates}
}

type cartTotals struct {
	Subtotal string          `json:"subtotal"`
	Tax      string          `json:"tax"`
	Service  string          `json:"service"`
	Total    string          `json:"total"`
	Display  pricing.Display `json:"display"`
}

type cartResponse struct {
	Lines     []models.CartLine `json:"lines"`
	ItemCount int               `json:"itemCount"`
	Totals    cartTotals        `json:"totals"`
}

func (h *CartHandler) payload() cartResponse {
	lines := h.Cart.Snapshot()
	t := pricing.Compute(lines, h.Rates)
	r2 := t.Round2()
	return cartResponse{
		Lines:     lines,
		ItemCount: h.Cart.ItemCount(),
		Totals: cartTotals{
			Subtotal: r2.Subtotal.StringFixed(2),
			Tax:      r2.Tax.StringFixed(2),
			Service:  r2.Service.StringFixed(2),
			Total:    r2.Total.StringFixed(2),
			Display:  t.Display(),
		},
	}
}

// Get: GET /cart
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.payload())
}

type itemReq struct {
	ID    int `json:"id"`
	Delta int `json:"delta"`
}

func decodeItemReq(w http.ResponseWriter, r *http.Request) (itemReq, bool) {
	var req itemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return req, false
	}
	if req.ID == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"id": "required"})
		return req, false
	}
	return req, true
}

// Add: POST /cart/items – unknown ids are silently ignored, so the response
// is the (possibly unchanged) cart either way.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeItemReq(w, r)
	if !ok {
		return
	}
	h.Cart.Add(req.ID)
	httpx.JSON(w, http.StatusOK, h.payload())
}

// Remove: DELETE /cart/items/{id} or POST /cart/items/delete
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var id int
	if r.Method == http.MethodDelete {
		raw := strings.TrimPrefix(r.URL.Path, "/cart/items/")
		n, err := strconv.Atoi(raw)
		if err != nil || n == 0 {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
			return
		}
		id = n
	} else {
		req, ok := decodeItemReq(w, r)
		if !ok {
			return
		}
		id = req.ID
	}
	h.Cart.Remove(id)
	httpx.JSON(w, http.StatusOK, h.payload())
}

// Quantity: POST /cart/items/quantity – applies a signed delta; dropping to
// zero or below removes the line.
func (h *CartHandler) Quantity(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeItemReq(w, r)
	if !ok {
		return
	}
	if req.Delta == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", map[string]string{"delta": "required"})
		return
	}
	h.Cart.ChangeQuantity(req.ID, req.Delta)
	httpx.JSON(w, http.StatusOK, h.payload())
}

// Clear: POST /cart/clear
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.Cart.Clear()
	httpx.JSON(w, http.StatusOK, h.payload())
}
