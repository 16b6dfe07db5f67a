package store

import (
	"sync"

	"github.com/ilanjuiran/RestaurantWebsite/internal/models"
)

// Memory is an in-memory Store used in tests and as a fallback when no
// database is wanted. Snapshots are deep-copied on the way in and out so
// callers cannot alias stored state.
type Memory struct {
	mu      sync.Mutex
	cart    []models.CartLine
	ledger  []models.Invoice
	counter int64

	hasCart    bool
	hasLedger  bool
	hasCounter bool

	// Err, when set, is returned by every Save method. Tests use it to
	// exercise the best-effort persistence path.
	Err error
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) LoadCart() ([]models.CartLine, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hasCart {
		return nil, false, nil
	}
	return copyLines(m.cart), true, nil
}

func (m *Memory) SaveCart(lines []models.CartLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.cart = copyLines(lines)
	m.hasCart = true
	return nil
}

func (m *Memory) LoadLedger() ([]models.Invoice, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hasLedger {
		return nil, false, nil
	}
	return copyInvoices(m.ledger), true, nil
}

func (m *Memory) SaveLedger(invoices []models.Invoice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.ledger = copyInvoices(invoices)
	m.hasLedger = true
	return nil
}

func (m *Memory) LoadCounter() (int64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hasCounter {
		return 0, false, nil
	}
	return m.counter, true, nil
}

func (m *Memory) SaveCounter(n int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.counter = n
	m.hasCounter = true
	return nil
}

func copyLines(in []models.CartLine) []models.CartLine {
	out := make([]models.CartLine, len(in))
	copy(out, in)
	return out
}

func copyInvoices(in []models.Invoice) []models.Invoice {
	out := make([]models.Invoice, len(in))
	for i, inv := range in {
		inv.Items = copyLines(inv.Items)
		out[i] = inv
	}
	return out
}
