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

// ratesHandler handles HTTP requests related to exchange rates.
type ratesHandler struct {
	currencyService portssvc.CurrencySvcFacade
	refreshService  portssvc.RateRefreshSvc
}

// newRatesHandler creates a new ratesHandler.
func newRatesHandler(cs portssvc.CurrencySvcFacade, rs portssvc.RateRefreshSvc) *ratesHandler {
	return &ratesHandler{
		currencyService: cs,
		refreshService:  rs,
	}
}

// registerRateRoutes registers the public rate listing and the admin
// force-refresh trigger.
func registerRateRoutes(public, admin *gin.RouterGroup, cs portssvc.CurrencySvcFacade, rs portssvc.RateRefreshSvc) {
	h := newRatesHandler(cs, rs)

	public.GET("/rates", h.listRates)
	admin.POST("/rates/refresh", h.forceRefresh)
}

// listRates godoc
// @Summary List exchange rates
// @Description Returns all active currencies with their cached rates and the most recent update time
// @Tags rates
// @Produce json
// @Success 200 {object} dto.ListRatesResponse
// @Failure 500 {object} map[string]string "Failed to list rates"
// @Router /rates [get]
func (h *ratesHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListActiveCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rates"})
		return
	}

	lastUpdate, err := h.currencyService.LastRateUpdate(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get last rate update from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rates"})
		return
	}

	logger.Info("Rates listed successfully", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, dto.ToListRatesResponse(currencies, lastUpdate))
}

// forceRefresh godoc
// @Summary Force a rate refresh
// @Description Runs one fetch/apply cycle against the upstream provider and waits for it to complete
// @Tags rates
// @Produce json
// @Success 200 {object} map[string]string "Refresh completed"
// @Failure 409 {object} map[string]string "Refresh already in progress"
// @Failure 502 {object} map[string]string "Upstream provider unavailable"
// @Failure 500 {object} map[string]string "Failed to refresh rates"
// @Router /admin/rates/refresh [post]
func (h *ratesHandler) forceRefresh(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to force rate refresh")

	err := h.refreshService.Refresh(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrRefreshInProgress) {
			logger.Warn("Force refresh rejected, run already in progress")
			c.JSON(http.StatusConflict, gin.H{"error": "Rate refresh already in progress"})
		} else if errors.Is(err, apperrors.ErrUpstreamUnavailable) {
			logger.Error("Force refresh failed, upstream unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream rate provider unavailable, previous rates keep serving"})
		} else {
			logger.Error("Force refresh failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh rates"})
		}
		return
	}

	logger.Info("Force refresh completed")
	c.JSON(http.StatusOK, gin.H{
		"status":      "refreshed",
		"completedAt": h.refreshService.LastCompleted(),
	})
}
