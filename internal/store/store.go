package store

import "github.com/ilanjuiran/RestaurantWebsite/internal/models"

// Persisted keys. They mirror the storage schema of the page this service
// replaces: each key holds a full snapshot rewritten on every mutation.
const (
	KeyCart    = "cart"
	KeyLedger  = "invoices"
	KeyCounter = "invoiceCounter"
)

// Store is the persistence port for the cart, the invoice ledger and the
// invoice number counter. Load methods report found=false when the key has
// never been written, so callers can fall back to their seeds.
type Store interface {
	LoadCart() ([]models.CartLine, bool, error)
	SaveCart(lines []models.CartLine) error

	LoadLedger() ([]models.Invoice, bool, error)
	SaveLedger(invoices []models.Invoice) error

	LoadCounter() (int64, bool, error)
	SaveCounter(n int64) error
}
