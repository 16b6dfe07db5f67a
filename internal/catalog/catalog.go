package catalog

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilanjuiran/RestaurantWebsite/internal/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by Lookup for ids absent from the menu.
var ErrNotFound = errors.New("menu item not found")

// Catalog is the read-only menu. It plays the role the view layer plays for
// the cart: a lookup from item id to name and price.
type Catalog struct {
	items []models.MenuItem
	byID  map[int]models.MenuItem
}

type fileEntry struct {
	ID       int     `yaml:"id"`
	Name     string  `yaml:"name"`
	Price    float64 `yaml:"price"`
	Category string  `yaml:"category"`
}

type file struct {
	Items []fileEntry `yaml:"items"`
}

// Load reads the menu file (YAML, see menu.yaml at the repo root).
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}
	return Parse(raw)
}

// Parse builds a catalog from raw YAML.
func Parse(raw []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse menu file: %w", err)
	}
	if len(f.Items) == 0 {
		return nil, errors.New("menu file has no items")
	}
	c := &Catalog{byID: make(map[int]models.MenuItem, len(f.Items))}
	for _, e := range f.Items {
		if e.ID <= 0 || e.Name == "" {
			return nil, fmt.Errorf("menu entry %q: id and name are required", e.Name)
		}
		if e.Price < 0 {
			return nil, fmt.Errorf("menu entry %q: negative price", e.Name)
		}
		if _, dup := c.byID[e.ID]; dup {
			return nil, fmt.Errorf("menu entry %q: duplicate id %d", e.Name, e.ID)
		}
		item := models.MenuItem{
			ID:       e.ID,
			Name:     e.Name,
			Price:    decimal.NewFromFloat(e.Price),
			Category: e.Category,
		}
		c.byID[item.ID] = item
		c.items = append(c.items, item)
	}
	return c, nil
}

// Lookup resolves an item id, returning ErrNotFound for unknown ids.
func (c *Catalog) Lookup(id int) (models.MenuItem, error) {
	item, ok := c.byID[id]
	if !ok {
		return models.MenuItem{}, ErrNotFound
	}
	return item, nil
}

// Items returns the menu in file order, optionally filtered by category
// ("" or "all" returns everything, like the menu tabs on the page).
func (c *Catalog) Items(category string) []models.MenuItem {
	if category == "" || category == "all" {
		out := make([]models.MenuItem, len(c.items))
		copy(out, c.items)
		return out
	}
	var out []models.MenuItem
	for _, it := range c.items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}
