package handlers

import (
	portssvc "github.com/atlastours/currency-service/internal/core/ports/services"
	"github.com/atlastours/currency-service/internal/middleware"
	"github.com/atlastours/currency-service/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	limiterInstance *limiter.Limiter,
) {
	registerValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public storefront endpoints sit behind the per-IP rate limiter. Admin
	// endpoints are reached only through the platform's auth proxy.
	public := r.Group("/api/v1", middleware.RateLimit(limiterInstance))
	admin := r.Group("/api/v1/admin")

	registerRateRoutes(public, admin, services.Currency, services.RateRefresh)
	registerConversionRoutes(public, services.Conversion)
	registerCommissionRoutes(admin, services.Commission)
}

// registerValidators installs custom binding validators used by the DTOs.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
		code := fl.Field().String()
		if len(code) != 3 {
			return false
		}
		for _, r := range code {
			if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
				return false
			}
		}
		return true
	})
}
