package dto

import (
	"time"

	"github.com/atlastours/currency-service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyRateResponse defines the data returned for a single currency rate.
type CurrencyRateResponse struct {
	CurrencyCode string          `json:"currencyCode"`
	Name         string          `json:"name"`
	Symbol       string          `json:"symbol"`
	Rate         decimal.Decimal `json:"rate"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ListRatesResponse is the full public rate listing. LastUpdate is the most
// recent updated_at across all listed currencies.
type ListRatesResponse struct {
	LastUpdate time.Time              `json:"lastUpdate"`
	Rates      []CurrencyRateResponse `json:"rates"`
}

// ToCurrencyRateResponse converts a domain.Currency to CurrencyRateResponse DTO
func ToCurrencyRateResponse(curr *domain.Currency) CurrencyRateResponse {
	return CurrencyRateResponse{
		CurrencyCode: curr.CurrencyCode,
		Name:         curr.Name,
		Symbol:       curr.Symbol,
		Rate:         curr.Rate,
		UpdatedAt:    curr.UpdatedAt,
	}
}

// ToListRatesResponse converts active currencies plus the aggregate update
// time to the public listing DTO.
func ToListRatesResponse(currencies []domain.Currency, lastUpdate time.Time) ListRatesResponse {
	rates := make([]CurrencyRateResponse, len(currencies))
	for i, curr := range currencies {
		rates[i] = ToCurrencyRateResponse(&curr)
	}
	return ListRatesResponse{
		LastUpdate: lastUpdate,
		Rates:      rates,
	}
}
