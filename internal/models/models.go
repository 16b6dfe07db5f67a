package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem is a catalog entry. The core treats the catalog as read-only;
// items are loaded from the menu file at startup.
type MenuItem struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}

// CartLine is one item selected by the customer. A cart holds at most one
// line per item id; quantity is always >= 1 (a line at zero is removed).
type CartLine struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// LineTotal is price x quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Customer holds the contact details captured at checkout. Blank fields are
// replaced with placeholders before the invoice is recorded.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Invoice is an immutable record of one completed order. Once appended to
// the ledger it is never mutated or deleted.
type Invoice struct {
	InvoiceNumber string          `json:"invoiceNumber"`
	Date          time.Time       `json:"date"`
	Customer      Customer        `json:"customer"`
	Items         []CartLine      `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Service       decimal.Decimal `json:"service"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"paymentMethod"`
}

// ItemCount is the number of units across all lines.
func (inv Invoice) ItemCount() int {
	n := 0
	for _, it := range inv.Items {
		n += it.Quantity
	}
	return n
}

// KVEntry backs the key-value persistence layer. Each key holds a full JSON
// snapshot (cart, invoices, invoiceCounter) written on every mutation.
type KVEntry struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}
