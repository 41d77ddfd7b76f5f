package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency represents a supported currency and its cached exchange rate.
// Rate is expressed as units of this currency per one unit of the base
// currency, so the base currency always carries a rate of exactly 1.
type Currency struct {
	CurrencyCode string          `json:"currencyCode"` // Primary Key (e.g., "USD")
	Name         string          `json:"name"`         // e.g., "US Dollar"
	Symbol       string          `json:"symbol"`       // e.g., "$"
	Rate         decimal.Decimal `json:"rate"`
	Active       bool            `json:"active"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
