package cart

import (
	"errors"
	"log"
	"sync"

	"github.com/ilanjuiran/RestaurantWebsite/internal/catalog"
	"github.com/ilanjuiran/RestaurantWebsite/internal/models"
	"github.com/ilanjuiran/RestaurantWebsite/internal/store"
)

// Notify is called after every cart mutation with a snapshot of the lines.
// The view layer hangs its refresh off this hook.
type Notify func(lines []models.CartLine)

// Cart holds the customer's in-progress selection. At most one line exists
// per item id; insertion order is preserved for display. Every mutation
// persists a full snapshot through the store. Persistence failures are
// logged and otherwise ignored: the in-memory cart stays authoritative for
// the running session.
type Cart struct {
	mu      sync.Mutex
	lines   []models.CartLine
	catalog *catalog.Catalog
	store   store.Store
	notify  Notify
}

// New builds a cart seeded from the last persisted snapshot, or empty when
// none exists.
func New(st store.Store, cat *catalog.Catalog, notify Notify) (*Cart, error) {
	lines, _, err := st.LoadCart()
	if err != nil {
		return nil, err
	}
	return &Cart{lines: lines, catalog: cat, store: st, notify: notify}, nil
}

// Add puts one unit of the item in the cart, merging into an existing line.
// Unknown ids are ignored: a broken menu entry must not break the session.
func (c *Cart) Add(id int) {
	item, err := c.catalog.Lookup(id)
	if err != nil {
		if !errors.Is(err, catalog.ErrNotFound) {
			log.Printf("cart: lookup %d: %v", id, err)
		}
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines[i].Quantity++
			c.persistAndNotify()
			return
		}
	}
	c.lines = append(c.lines, models.CartLine{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: 1,
	})
	c.persistAndNotify()
}

// Remove deletes the line for id. Removing an absent id is a no-op.
func (c *Cart) Remove(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(id)
}

func (c *Cart) removeLocked(id int) {
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.persistAndNotify()
			return
		}
	}
}

// ChangeQuantity adds delta (positive or negative) to the line's quantity.
// A resulting quantity <= 0 removes the line.
func (c *Cart) ChangeQuantity(id, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ID == id {
			c.lines[i].Quantity += delta
			if c.lines[i].Quantity <= 0 {
				c.removeLocked(id)
				return
			}
			c.persistAndNotify()
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	c.persistAndNotify()
}

// Snapshot returns a copy of the current lines. Order processing works on
// snapshots so later mutations cannot alter a placed order.
func (c *Cart) Snapshot() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// ItemCount is the total number of units, the figure on the cart badge.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) persistAndNotify() {
	snapshot := make([]models.CartLine, len(c.lines))
	copy(snapshot, c.lines)
	if err := c.store.SaveCart(snapshot); err != nil {
		log.Printf("cart: persist failed: %v", err)
	}
	if c.notify != nil {
		c.notify(snapshot)
	}
}
