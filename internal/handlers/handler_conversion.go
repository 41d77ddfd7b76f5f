package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/atlastours/currency-service/internal/apperrors"
	portssvc "github.com/atlastours/currency-service/internal/core/ports/services"
	"github.com/atlastours/currency-service/internal/dto"
	"github.com/atlastours/currency-service/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// conversionHandler handles HTTP requests for currency conversion.
type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

// newConversionHandler creates a new conversionHandler.
func newConversionHandler(cs portssvc.ConversionSvcFacade) *conversionHandler {
	return &conversionHandler{
		conversionService: cs,
	}
}

// registerConversionRoutes registers the public conversion endpoint.
func registerConversionRoutes(public *gin.RouterGroup, cs portssvc.ConversionSvcFacade) {
	h := newConversionHandler(cs)

	public.GET("/convert", h.convert)
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts amount from one active currency to another using the cached rates, adding the target currency's flat commission
// @Tags conversion
// @Produce json
// @Param amount query string true "Amount to convert (positive decimal)"
// @Param from query string false "Source currency code, defaults to the base currency"
// @Param to query string true "Target currency code"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 409 {object} map[string]string "Currency inactive"
// @Failure 500 {object} map[string]string "Failed to convert"
// @Router /convert [get]
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConvertRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		logger.Warn("Invalid amount for convert", slog.String("amount", req.Amount))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be a decimal number"})
		return
	}

	logger = logger.With(slog.String("from", req.From), slog.String("to", req.To))

	breakdown, err := h.conversionService.Convert(c.Request.Context(), amount, req.From, req.To)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error converting", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Currency not found for conversion")
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else if errors.Is(err, apperrors.ErrCurrencyInactive) {
			logger.Warn("Currency inactive for conversion")
			c.JSON(http.StatusConflict, gin.H{"error": "Currency is inactive"})
		} else {
			logger.Error("Failed to convert in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(breakdown))
}
