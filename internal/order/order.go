package order

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ilanjuiran/RestaurantWebsite/internal/cart"
	"github.com/ilanjuiran/RestaurantWebsite/internal/models"
	"github.com/ilanjuiran/RestaurantWebsite/internal/pricing"
	"github.com/ilanjuiran/RestaurantWebsite/internal/store"
)

// ErrEmptyCart is returned when checkout is attempted with nothing in the cart.
var ErrEmptyCart = errors.New("cart is empty")

// PaymentMethod is the customer's declared way of paying. QR is a
// display-only hint; nothing is verified.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
	PaymentQR   PaymentMethod = "qr"
)

// ParsePaymentMethod validates the wire value for a payment method.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(s))) {
	case PaymentCash:
		return PaymentCash, nil
	case PaymentCard:
		return PaymentCard, nil
	case PaymentQR:
		return PaymentQR, nil
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

// Placeholders recorded when checkout fields are left blank.
const (
	DefaultCustomerName = "Walk-in Customer"
	DefaultContact      = "N/A"
)

const invoicePrefix = "INV-"

// Processor turns cart snapshots into ledger entries. It owns the invoice
// number sequence and the in-memory ledger, both persisted through the store.
type Processor struct {
	mu      sync.Mutex
	store   store.Store
	cart    *cart.Cart
	rates   pricing.Rates
	ledger  []models.Invoice
	counter int64
	now     func() time.Time
}

// NewProcessor loads the persisted ledger and counter. The counter falls
// back to seed when it was never persisted, and is raised to one past the
// highest number already in the ledger so a stale counter can never issue a
// duplicate invoice number.
func NewProcessor(st store.Store, c *cart.Cart, rates pricing.Rates, seed int64) (*Processor, error) {
	ledger, _, err := st.LoadLedger()
	if err != nil {
		return nil, err
	}
	counter, found, err := st.LoadCounter()
	if err != nil {
		return nil, err
	}
	if !found {
		counter = seed
	}
	if highest, ok := highestSequence(ledger); ok && highest+1 > counter {
		counter = highest + 1
	}
	return &Processor{
		store:   st,
		cart:    c,
		rates:   rates,
		ledger:  ledger,
		counter: counter,
		now:     time.Now,
	}, nil
}

func highestSequence(ledger []models.Invoice) (int64, bool) {
	var max int64
	found := false
	for _, inv := range ledger {
		raw, ok := strings.CutPrefix(inv.InvoiceNumber, invoicePrefix)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		if !found || n > max {
			max = n
			found = true
		}
	}
	return max, found
}

// ProcessOrder completes a checkout: it prices the current cart snapshot,
// assigns the next invoice number, appends the invoice to the ledger,
// advances the counter and clears the cart. Blank customer fields are
// replaced with placeholders rather than rejected.
//
// The ledger is persisted before the counter so a crash between the two
// writes leaves the counter low (detectable and repaired at next startup)
// instead of silently skipping numbers.
func (p *Processor) ProcessOrder(method PaymentMethod, customer models.Customer) (models.Invoice, error) {
	items := p.cart.Snapshot()
	if len(items) == 0 {
		return models.Invoice{}, ErrEmptyCart
	}
	totals := pricing.Compute(items, p.rates).Round2()

	p.mu.Lock()
	defer p.mu.Unlock()

	inv := models.Invoice{
		InvoiceNumber: fmt.Sprintf("%s%d", invoicePrefix, p.counter),
		Date:          p.now(),
		Customer:      defaulted(customer),
		Items:         items,
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Service:       totals.Service,
		Total:         totals.Total,
		PaymentMethod: string(method),
	}

	p.ledger = append(p.ledger, inv)
	if err := p.store.SaveLedger(p.ledger); err != nil {
		// An order the ledger never recorded must not be reported as placed.
		p.ledger = p.ledger[:len(p.ledger)-1]
		return models.Invoice{}, fmt.Errorf("persist ledger: %w", err)
	}
	p.counter++
	if err := p.store.SaveCounter(p.counter); err != nil {
		// The invoice is recorded; a low counter is repaired at next startup.
		log.Printf("order: persist counter failed: %v", err)
	}
	p.cart.Clear()
	return inv, nil
}

// Ledger returns a copy of all invoices in append order.
func (p *Processor) Ledger() []models.Invoice {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.Invoice, len(p.ledger))
	for i, inv := range p.ledger {
		items := make([]models.CartLine, len(inv.Items))
		copy(items, inv.Items)
		inv.Items = items
		out[i] = inv
	}
	return out
}

// Sequence reports the next invoice number to be issued.
func (p *Processor) Sequence() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.counter
}

func defaulted(c models.Customer) models.Customer {
	if strings.TrimSpace(c.Name) == "" {
		c.Name = DefaultCustomerName
	}
	if strings.TrimSpace(c.Email) == "" {
		c.Email = DefaultContact
	}
	if strings.TrimSpace(c.Phone) == "" {
		c.Phone = DefaultContact
	}
	if strings.TrimSpace(c.Address) == "" {
		c.Address = DefaultContact
	}
	return c
}
