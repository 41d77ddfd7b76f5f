package dto

import (
	"github.com/atlastours/currency-service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertCommissionRequest defines the data needed to create or update a
// commission. Amount is a flat surcharge in the target currency's units.
type UpsertCommissionRequest struct {
	CurrencyCode string          `json:"currencyCode" binding:"required,currencycode"`
	Amount       decimal.Decimal `json:"amount"`
}

// CommissionResponse defines the data returned for a commission, including
// the currency's display fields for the admin listing.
type CommissionResponse struct {
	CurrencyCode   string          `json:"currencyCode"`
	CurrencyName   string          `json:"currencyName,omitempty"`
	CurrencySymbol string          `json:"currencySymbol,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
}

// ToCommissionResponse converts a domain.Commission to CommissionResponse DTO
func ToCommissionResponse(c *domain.Commission) CommissionResponse {
	return CommissionResponse{
		CurrencyCode: c.CurrencyCode,
		Amount:       c.Amount,
	}
}

// ToListCommissionResponse converts joined commission rows to DTOs
func ToListCommissionResponse(commissions []domain.CommissionInfo) []CommissionResponse {
	res := make([]CommissionResponse, len(commissions))
	for i, c := range commissions {
		res[i] = CommissionResponse{
			CurrencyCode:   c.CurrencyCode,
			CurrencyName:   c.CurrencyName,
			CurrencySymbol: c.CurrencySymbol,
			Amount:         c.Amount,
		}
	}
	return res
}
