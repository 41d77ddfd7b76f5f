package dto

import (
	"time"

	"github.com/atlastours/currency-service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConvertRequest carries the query parameters of a conversion call. Amount is
// bound as a string and parsed to decimal in the handler so a malformed value
// yields a 400 rather than a silent zero. From defaults to the base currency
// when omitted.
type ConvertRequest struct {
	Amount string `form:"amount" binding:"required"`
	From   string `form:"from" binding:"omitempty,currencycode"`
	To     string `form:"to" binding:"required,currencycode"`
}

// ConversionResponse defines the data returned for a conversion.
type ConversionResponse struct {
	OriginalAmount   decimal.Decimal `json:"originalAmount"`
	FromCurrency     string          `json:"fromCurrency"`
	ToCurrency       string          `json:"toCurrency"`
	ConvertedAmount  decimal.Decimal `json:"convertedAmount"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	FinalAmount      decimal.Decimal `json:"finalAmount"`
	ExchangeRateUsed decimal.Decimal `json:"exchangeRateUsed"`
	Timestamp        time.Time       `json:"timestamp"`
}

// ToConversionResponse converts a domain.ConversionBreakdown to ConversionResponse DTO
func ToConversionResponse(b *domain.ConversionBreakdown) ConversionResponse {
	return ConversionResponse{
		OriginalAmount:   b.OriginalAmount,
		FromCurrency:     b.FromCurrency,
		ToCurrency:       b.ToCurrency,
		ConvertedAmount:  b.ConvertedAmount,
		CommissionAmount: b.CommissionAmount,
		FinalAmount:      b.FinalAmount,
		ExchangeRateUsed: b.ExchangeRateUsed,
		Timestamp:        b.Timestamp,
	}
}
