package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ilanjuiran/RestaurantWebsite/internal/models"

	"github.com/shopspring/decimal"
)

// Period selects invoices relative to the current time.
type Period string

const (
	PeriodAll   Period = "all"
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// ParsePeriod maps a wire value to a Period. Unrecognized values mean all,
// matching the report filter's fall-through behaviour.
func ParsePeriod(s string) Period {
	switch Period(strings.ToLower(strings.TrimSpace(s))) {
	case PeriodToday:
		return PeriodToday
	case PeriodWeek:
		return PeriodWeek
	case PeriodMonth:
		return PeriodMonth
	}
	return PeriodAll
}

// FilterByPeriod selects the invoices matching p at time now: today is the
// same calendar day in local time, week is a rolling 7x24h window, month is
// the same calendar month and year.
func FilterByPeriod(ledger []models.Invoice, p Period, now time.Time) []models.Invoice {
	out := make([]models.Invoice, 0, len(ledger))
	for _, inv := range ledger {
		if matches(inv.Date, p, now) {
			out = append(out, inv)
		}
	}
	return out
}

func matches(date time.Time, p Period, now time.Time) bool {
	switch p {
	case PeriodToday:
		y1, m1, d1 := date.Local().Date()
		y2, m2, d2 := now.Local().Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	case PeriodWeek:
		return !date.Before(now.Add(-7 * 24 * time.Hour))
	case PeriodMonth:
		return date.Local().Month() == now.Local().Month() && date.Local().Year() == now.Local().Year()
	}
	return true
}

// Summary aggregates a filtered set of invoices.
type Summary struct {
	TotalSales   decimal.Decimal
	TotalOrders  int
	AverageOrder decimal.Decimal
}

// Aggregate sums totals and order count. AverageOrder is zero when there
// are no orders.
func Aggregate(invoices []models.Invoice) Summary {
	s := Summary{TotalSales: decimal.Zero, AverageOrder: decimal.Zero}
	for _, inv := range invoices {
		s.TotalSales = s.TotalSales.Add(inv.Total)
		s.TotalOrders++
	}
	if s.TotalOrders > 0 {
		s.AverageOrder = s.TotalSales.Div(decimal.NewFromInt(int64(s.TotalOrders))).Round(2)
	}
	return s
}

// ItemSales is a menu item's summed quantity across invoices.
type ItemSales struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// TopItems sums quantities per item name and returns the limit best sellers,
// descending. Ties keep first-encountered order.
func TopItems(invoices []models.Invoice, limit int) []ItemSales {
	index := map[string]int{}
	var counts []ItemSales
	for _, inv := range invoices {
		for _, it := range inv.Items {
			if i, ok := index[it.Name]; ok {
				counts[i].Quantity += it.Quantity
				continue
			}
			index[it.Name] = len(counts)
			counts = append(counts, ItemSales{Name: it.Name, Quantity: it.Quantity})
		}
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Quantity > counts[j].Quantity
	})
	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

// HistoryRow is one line of the order-history table.
type HistoryRow struct {
	InvoiceNumber string `json:"invoiceNumber"`
	Date          string `json:"date"`
	Customer      string `json:"customer"`
	Items         int    `json:"items"`
	Total         string `json:"total"`
}

// History renders filtered invoices most recent first, with per-invoice
// unit counts. Presentation only; aggregates work on the unreversed slice.
func History(invoices []models.Invoice) []HistoryRow {
	out := make([]HistoryRow, 0, len(invoices))
	for i := len(invoices) - 1; i >= 0; i-- {
		inv := invoices[i]
		out = append(out, HistoryRow{
			InvoiceNumber: inv.InvoiceNumber,
			Date:          inv.Date.Local().Format("2006-01-02"),
			Customer:      inv.Customer.Name,
			Items:         inv.ItemCount(),
			Total:         inv.Total.StringFixed(0),
		})
	}
	return out
}

var csvHeader = []string{
	"Invoice #", "Date", "Customer Name", "Email", "Phone", "Items",
	"Subtotal", "Tax", "Service", "Total", "Payment Method",
}

// ToCSV serializes the ledger, one row per invoice in append order. All
// fields go through encoding/csv, so anything containing a delimiter, quote
// or newline is quoted with embedded quotes doubled.
func ToCSV(ledger []models.Invoice) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, inv := range ledger {
		names := make([]string, len(inv.Items))
		for i, it := range inv.Items {
			names[i] = fmt.Sprintf("%s x%d", it.Name, it.Quantity)
		}
		row := []string{
			inv.InvoiceNumber,
			inv.Date.Local().Format("2006-01-02"),
			inv.Customer.Name,
			inv.Customer.Email,
			inv.Customer.Phone,
			strings.Join(names, "; "),
			inv.Subtotal.StringFixed(2),
			inv.Tax.StringFixed(2),
			inv.Service.StringFixed(2),
			inv.Total.StringFixed(2),
			inv.PaymentMethod,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFilename names the CSV download for the given day.
func ExportFilename(now time.Time) string {
	return "sales-report-" + now.Format("2006-01-02") + ".csv"
}
