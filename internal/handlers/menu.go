package handlers

import (
	"net/http"

	"github.com/ilanjuiran/RestaurantWebsite/internal/catalog"
	"github.com/ilanjuiran/RestaurantWebsite/internal/httpx"
)

// MenuHandler serves the read-only catalog.
type MenuHandler struct {
	Catalog *catalog.Catalog
}

func NewMenuHandler(cat *catalog.Catalog) *MenuHandler {
	return &MenuHandler{Catalog: cat}
}

// List: GET /menu?category=starters – menu items, optionally filtered the
// way the menu tabs filter the page.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	items := h.Catalog.Items(category)
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}
