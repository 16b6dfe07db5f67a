package order

import (
	"errors"
	"testing"
	"time"

	"github.com/ilanjuiran/RestaurantWebsite/internal/cart"
	"github.com/ilanjuiran/RestaurantWebsite/internal/catalog"
	"github.com/ilanjuiran/RestaurantWebsite/internal/models"
	"github.com/ilanjuiran/RestaurantWebsite/internal/pricing"
	"github.com/ilanjuiran/RestaurantWebsite/internal/store"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Parse([]byte(`
items:
  - id: 1
    name: Thali
    price: 100
    category: mains
  - id: 2
    name: Masala Chai
    price: 50
    category: beverages
`))
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return cat
}

func setup(t *testing.T, st store.Store) (*cart.Cart, *Processor) {
	t.Helper()
	c, err := cart.New(st, testCatalog(t), nil)
	if err != nil {
		t.Fatalf("cart: %v", err)
	}
	p, err := NewProcessor(st, c, pricing.DefaultRates(), 1000)
	if err != nil {
		t.Fatalf("processor: %v", err)
	}
	return c, p
}

func TestProcessOrderWorkedExample(t *testing.T) {
	st := store.NewMemory()
	c, p := setup(t, st)
	c.Add(1)
	c.Add(1)

	inv, err := p.ProcessOrder(PaymentCash, models.Customer{Name: "Asha"})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if inv.InvoiceNumber != "INV-1000" {
		t.Fatalf("invoice number: %s", inv.InvoiceNumber)
	}
	if inv.Subtotal.StringFixed(2) != "200.00" || inv.Tax.StringFixed(2) != "16.00" ||
		inv.Service.StringFixed(2) != "10.00" || inv.Total.StringFixed(2) != "226.00" {
		t.Fatalf("totals: %s/%s/%s/%s", inv.Subtotal, inv.Tax, inv.Service, inv.Total)
	}
	if p.Sequence() != 1001 {
		t.Fatalf("sequence after order: %d", p.Sequence())
	}
	if len(c.Snapshot()) != 0 {
		t.Fatalf("cart must be cleared after checkout")
	}

	// both ledger and counter were persisted
	ledger, found, err := st.LoadLedger()
	if err != nil || !found || len(ledger) != 1 {
		t.Fatalf("persisted ledger: found=%v err=%v len=%d", found, err, len(ledger))
	}
	n, found, err := st.LoadCounter()
	if err != nil || !found || n != 1001 {
		t.Fatalf("persisted counter: found=%v err=%v n=%d", found, err, n)
	}
}

func TestProcessOrderEmptyCart(t *testing.T) {
	st := store.NewMemory()
	_, p := setup(t, st)
	if _, err := p.ProcessOrder(PaymentCash, models.Customer{}); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart got %v", err)
	}
	if len(p.Ledger()) != 0 {
		t.Fatalf("ledger must stay empty")
	}
	if p.Sequence() != 1000 {
		t.Fatalf("sequence must stay at seed, got %d", p.Sequence())
	}
	if _, found, _ := st.LoadLedger(); found {
		t.Fatalf("nothing must be persisted")
	}
}

func TestInvoiceNumbersAreSequentialAndUnique(t *testing.T) {
	st := store.NewMemory()
	c, p := setup(t, st)
	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		c.Add(2)
		inv, err := p.ProcessOrder(PaymentCard, models.Customer{})
		if err != nil {
			t.Fatalf("order %d: %v", i, err)
		}
		if seen[inv.InvoiceNumber] {
			t.Fatalf("duplicate invoice number %s", inv.InvoiceNumber)
		}
		seen[inv.InvoiceNumber] = true
	}
	if !seen["INV-1000"] || !seen["INV-1001"] || !seen["INV-1002"] {
		t.Fatalf("unexpected numbers: %v", seen)
	}
}

func TestCustomerDefaults(t *testing.T) {
	st := store.NewMemory()
	c, p := setup(t, st)
	c.Add(1)
	inv, err := p.ProcessOrder(PaymentQR, models.Customer{Email: "  "})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if inv.Customer.Name != DefaultCustomerName {
		t.Fatalf("name: %q", inv.Customer.Name)
	}
	if inv.Customer.Email != DefaultContact || inv.Customer.Phone != DefaultContact || inv.Customer.Address != DefaultContact {
		t.Fatalf("contact defaults: %#v", inv.Customer)
	}
}

func TestInvoiceItemsAreASnapshot(t *testing.T) {
	st := store.NewMemory()
	c, p := setup(t, st)
	c.Add(1)
	inv, err := p.ProcessOrder(PaymentCash, models.Customer{})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	// later cart activity must not touch the recorded invoice
	c.Add(2)
	c.Add(2)
	if len(inv.Items) != 1 || inv.Items[0].ID != 1 {
		t.Fatalf("invoice items changed: %#v", inv.Items)
	}
	if got := p.Ledger()[0].Items; len(got) != 1 || got[0].Quantity != 1 {
		t.Fatalf("ledger items changed: %#v", got)
	}
}

func TestCounterReseededFromLedger(t *testing.T) {
	st := store.NewMemory()
	// ledger already holds INV-1500 but the counter write was lost
	if err := st.SaveLedger([]models.Invoice{{InvoiceNumber: "INV-1500", Date: time.Now()}}); err != nil {
		t.Fatalf("seed ledger: %v", err)
	}
	if err := st.SaveCounter(1200); err != nil {
		t.Fatalf("seed counter: %v", err)
	}
	c, p := setup(t, st)
	if p.Sequence() != 1501 {
		t.Fatalf("expected reseeded counter 1501 got %d", p.Sequence())
	}
	c.Add(1)
	inv, err := p.ProcessOrder(PaymentCash, models.Customer{})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if inv.InvoiceNumber != "INV-1501" {
		t.Fatalf("expected INV-1501 got %s", inv.InvoiceNumber)
	}
}

func TestLedgerPersistFailureAborts(t *testing.T) {
	st := store.NewMemory()
	c, p := setup(t, st)
	c.Add(1)
	st.Err = errors.New("disk full")
	if _, err := p.ProcessOrder(PaymentCash, models.Customer{}); err == nil {
		t.Fatalf("expected error when the ledger cannot be persisted")
	}
	if len(p.Ledger()) != 0 {
		t.Fatalf("failed order must not stay in the ledger")
	}
	if p.Sequence() != 1000 {
		t.Fatalf("failed order must not consume a number, got %d", p.Sequence())
	}
	if len(c.Snapshot()) != 1 {
		t.Fatalf("failed order must not clear the cart")
	}
}

func TestParsePaymentMethod(t *testing.T) {
	for _, ok := range []string{"cash", "CARD", " qr "} {
		if _, err := ParsePaymentMethod(ok); err != nil {
			t.Fatalf("%q: %v", ok, err)
		}
	}
	if _, err := ParsePaymentMethod("bitcoin"); err == nil {
		t.Fatalf("expected error for unknown method")
	}
}
