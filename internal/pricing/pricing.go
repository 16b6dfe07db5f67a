package pricing

import (
	"github.com/ilanjuiran/RestaurantWebsite/internal/models"

	"github.com/shopspring/decimal"
)

// Rates are the fixed charge rates applied to every order.
type Rates struct {
	Tax     decimal.Decimal
	Service decimal.Decimal
}

// DefaultRates returns 8% tax and 5% service charge.
func DefaultRates() Rates {
	return Rates{
		Tax:     decimal.NewFromFloat(0.08),
		Service: decimal.NewFromFloat(0.05),
	}
}

// Totals is the priced form of a cart snapshot. Amounts carry full decimal
// precision; rounding happens only at presentation and persistence
// boundaries (Round2 / Display).
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Service  decimal.Decimal
	Total    decimal.Decimal
}

// Compute prices a cart snapshot. Pure: no state, no side effects.
func Compute(lines []models.CartLine, r Rates) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal())
	}
	tax := subtotal.Mul(r.Tax)
	service := subtotal.Mul(r.Service)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Service:  service,
		Total:    subtotal.Add(tax).Add(service),
	}
}

// Round2 rounds every amount to two decimal places, the precision used in
// persisted invoices and CSV exports.
func (t Totals) Round2() Totals {
	return Totals{
		Subtotal: t.Subtotal.Round(2),
		Tax:      t.Tax.Round(2),
		Service:  t.Service.Round(2),
		Total:    t.Total.Round(2),
	}
}

// Display holds the zero-decimal strings shown to the customer.
type Display struct {
	Subtotal string `json:"subtotal"`
	Tax      string `json:"tax"`
	Service  string `json:"service"`
	Total    string `json:"total"`
}

// Display renders the totals at zero decimal places for on-screen labels.
func (t Totals) Display() Display {
	return Display{
		Subtotal: t.Subtotal.StringFixed(0),
		Tax:      t.Tax.StringFixed(0),
		Service:  t.Service.StringFixed(0),
		Total:    t.Total.StringFixed(0),
	}
}
