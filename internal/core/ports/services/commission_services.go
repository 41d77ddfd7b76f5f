package services

import (
	"context"

	"github.com/atlastours/currency-service/internal/core/domain"
	"github.com/atlastours/currency-service/internal/dto"
)

// CommissionReaderSvc defines read operations for commission data
type CommissionReaderSvc interface {
	// ListActiveCommissions retrieves active commissions with currency display info.
	ListActiveCommissions(ctx context.Context) ([]domain.CommissionInfo, error)
}

// CommissionWriterSvc defines admin write operations for commission data
type CommissionWriterSvc interface {
	// UpsertCommission creates the commission for a currency or updates it in place.
	UpsertCommission(ctx context.Context, req dto.UpsertCommissionRequest) (*domain.Commission, error)

	// RemoveCommission deletes the commission for a currency.
	RemoveCommission(ctx context.Context, currencyCode string) error
}

// CommissionSvcFacade combines all commission-related service interfaces
type CommissionSvcFacade interface {
	CommissionReaderSvc
	CommissionWriterSvc
}
