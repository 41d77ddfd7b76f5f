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
)

// commissionHandler handles admin HTTP requests for conversion commissions.
type commissionHandler struct {
	commissionService portssvc.CommissionSvcFacade
}

// newCommissionHandler creates a new commissionHandler.
func newCommissionHandler(cs portssvc.CommissionSvcFacade) *commissionHandler {
	return &commissionHandler{
		commissionService: cs,
	}
}

// registerCommissionRoutes registers admin commission management routes.
func registerCommissionRoutes(admin *gin.RouterGroup, cs portssvc.CommissionSvcFacade) {
	h := newCommissionHandler(cs)

	commissions := admin.Group("/commissions")
	{
		commissions.GET("", h.listCommissions)
		commissions.PUT("", h.upsertCommission)
		commissions.DELETE("/:code", h.deleteCommission)
	}
}

// listCommissions godoc
// @Summary List active commissions
// @Description Retrieves all active commissions joined with currency display info
// @Tags commissions
// @Produce json
// @Success 200 {array} dto.CommissionResponse
// @Failure 500 {object} map[string]string "Failed to list commissions"
// @Router /admin/commissions [get]
func (h *commissionHandler) listCommissions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	commissions, err := h.commissionService.ListActiveCommissions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list commissions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list commissions"})
		return
	}

	logger.Info("Commissions listed successfully", slog.Int("count", len(commissions)))
	c.JSON(http.StatusOK, dto.ToListCommissionResponse(commissions))
}

// upsertCommission godoc
// @Summary Create or update a commission
// @Description Sets the flat surcharge added to conversions into the given currency; inserts if absent, updates in place otherwise
// @Tags commissions
// @Accept json
// @Produce json
// @Param commission body dto.UpsertCommissionRequest true "Commission details"
// @Success 200 {object} dto.CommissionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 409 {object} map[string]string "Currency inactive"
// @Failure 500 {object} map[string]string "Failed to save commission"
// @Router /admin/commissions [put]
func (h *commissionHandler) upsertCommission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpsertCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for upsertCommission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("currency_code", req.CurrencyCode))
	logger.Info("Received request to upsert commission")

	commission, err := h.commissionService.UpsertCommission(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error upserting commission", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Currency not found for commission")
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else if errors.Is(err, apperrors.ErrCurrencyInactive) {
			logger.Warn("Currency inactive for commission")
			c.JSON(http.StatusConflict, gin.H{"error": "Currency is inactive"})
		} else {
			logger.Error("Failed to upsert commission in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save commission"})
		}
		return
	}

	logger.Info("Commission saved successfully")
	c.JSON(http.StatusOK, dto.ToCommissionResponse(commission))
}

// deleteCommission godoc
// @Summary Delete a commission
// @Description Removes the commission for the given currency code
// @Tags commissions
// @Produce json
// @Param code path string true "Currency Code (3 letters)"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Invalid currency code"
// @Failure 404 {object} map[string]string "Commission not found"
// @Failure 500 {object} map[string]string "Failed to delete commission"
// @Router /admin/commissions/{code} [delete]
func (h *commissionHandler) deleteCommission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyCode := c.Param("code")

	logger = logger.With(slog.String("currency_code", currencyCode))
	logger.Info("Received request to delete commission")

	err := h.commissionService.RemoveCommission(c.Request.Context(), currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error deleting commission", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Commission not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Commission not found"})
		} else {
			logger.Error("Failed to delete commission in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete commission"})
		}
		return
	}

	logger.Info("Commission deleted successfully")
	c.Status(http.StatusNoContent)
}
