package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConversionBreakdown is the result of converting an amount between two
// currencies. ConvertedAmount, CommissionAmount and FinalAmount are each
// rounded independently to two decimal places.
type ConversionBreakdown struct {
	OriginalAmount   decimal.Decimal `json:"originalAmount"`
	FromCurrency     string          `json:"fromCurrency"`
	ToCurrency       string          `json:"toCurrency"`
	ConvertedAmount  decimal.Decimal `json:"convertedAmount"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	FinalAmount      decimal.Decimal `json:"finalAmount"`
	ExchangeRateUsed decimal.Decimal `json:"exchangeRateUsed"`
	Timestamp        time.Time       `json:"timestamp"`
}
