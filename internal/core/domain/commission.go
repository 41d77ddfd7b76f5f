package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Commission is a flat additive surcharge applied on top of a conversion
// into the given currency. Amount is denominated in the target currency's
// units, not a percentage.
type Commission struct {
	CurrencyCode string          `json:"currencyCode"`
	Amount       decimal.Decimal `json:"amount"`
	Active       bool            `json:"active"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// CommissionInfo is a commission joined with its currency's display fields,
// used by the admin listing.
type CommissionInfo struct {
	Commission
	CurrencyName   string `json:"currencyName"`
	CurrencySymbol string `json:"currencySymbol"`
}
