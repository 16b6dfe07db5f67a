package config

import (
	"log"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

type Config struct {
	Port        string
	DatabaseDSN string
	Env         string
	MenuFile    string
	InvoiceSeed int64
	TaxRate     decimal.Decimal
	ServiceRate decimal.Decimal
	UPIID       string
	UPIPayee    string
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by user) > default.
func Load() Config {
	cfg := Config{}
	cfg.Port = getEnv("PORT", "8080")
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", "restaurant.db")
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.MenuFile = getEnv("MENU_FILE", "menu.yaml")
	cfg.InvoiceSeed = getEnvInt64("INVOICE_SEED", 1000)
	cfg.TaxRate = getEnvDecimal("TAX_RATE", decimal.NewFromFloat(0.08))
	cfg.ServiceRate = getEnvDecimal("SERVICE_RATE", decimal.NewFromFloat(0.05))
	cfg.UPIID = getEnv("UPI_ID", "drish@upi")
	cfg.UPIPayee = getEnv("UPI_PAYEE", "Drish Restaurant")
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Printf("invalid integer for %s: %s", key, v)
			return def
		}
		return n
	}
	return def
}

func getEnvDecimal(key string, def decimal.Decimal) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			log.Printf("invalid decimal for %s: %s", key, v)
			return def
		}
		return d
	}
	return def
}

// ParseBool reads an env var as bool with default.
func ParseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %s", key, v)
			return def
		}
		return b
	}
	return def
}
