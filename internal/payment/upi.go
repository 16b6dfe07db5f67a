package payment

import (
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"
)

// Config identifies the payee for UPI payment hints. The URI is shown to
// the customer as a QR code; the payment itself is never verified.
type Config struct {
	UPIID string
	Payee string
}

// UPIURI builds a upi://pay deep link for the given amount (INR, 2dp).
func UPIURI(cfg Config, amount decimal.Decimal, note string) string {
	q := url.Values{}
	q.Set("pa", cfg.UPIID)
	q.Set("pn", cfg.Payee)
	q.Set("am", amount.StringFixed(2))
	q.Set("cu", "INR")
	if note != "" {
		q.Set("tn", note)
	}
	return "upi://pay?" + q.Encode()
}

// QRImageURL returns an external QR rendering of the URI. Image generation
// is delegated; this service only hands the view layer a URL.
func QRImageURL(uri string, size int) string {
	if size <= 0 {
		size = 250
	}
	return fmt.Sprintf("https://api.qrserver.com/v1/create-qr-code/?size=%dx%d&data=%s",
		size, size, url.QueryEscape(uri))
}
