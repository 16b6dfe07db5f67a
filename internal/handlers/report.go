package handlers

import (
	"net/http"
	"time"

	"github.com/ilanjuiran/RestaurantWebsite/internal/httpx"
	"github.com/ilanjuiran/RestaurantWebsite/internal/order"
	"github.com/ilanjuiran/RestaurantWebsite/internal/report"
)

// ReportHandler serves sales aggregates and the CSV export.
type ReportHandler struct {
	Processor *order.Processor
	Now       func() time.Time
}

func NewReportHandler(p *order.Processor) *ReportHandler {
	return &ReportHandler{Processor: p, Now: time.Now}
}

// Report: GET /report?period=all|today|week|month
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	period := report.ParsePeriod(r.URL.Query().Get("period"))
	filtered := report.FilterByPeriod(h.Processor.Ledger(), period, h.Now())
	summary := report.Aggregate(filtered)
	httpx.JSON(w, http.StatusOK, map[string]any{
		"period":       string(period),
		"totalSales":   summary.TotalSales.StringFixed(2),
		"totalOrders":  summary.TotalOrders,
		"averageOrder": summary.AverageOrder.StringFixed(2),
		"display": map[string]string{
			"totalSales":   summary.TotalSales.StringFixed(0),
			"averageOrder": summary.AverageOrder.StringFixed(0),
		},
		"topItems": report.TopItems(filtered, 5),
		"history":  report.History(filtered),
	})
}

// Export: GET /report/export – the full ledger as CSV, unfiltered, in
// append order.
func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := report.ToCSV(h.Processor.Ledger())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "export_failed", nil)
		return
	}
	httpx.CSV(w, report.ExportFilename(h.Now()), data)
}
