package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/ports/services"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/middleware"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/platform/config"
)

// checkoutRateLimit bounds preference creation per client IP; the hosted
// checkout call is the only endpoint that hits the payment processor.
const checkoutRateLimit = "5-M"

// RegisterRoutes sets up all application routes, injecting dependencies
// using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIRoutes(r, cfg, services)
}

// setupAPIRoutes configures the /api group and delegates to specific
// entity route registrations.
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	api := r.Group("/api")

	rate, err := limiter.NewRateFromFormatted(checkoutRateLimit)
	if err != nil {
		// The format string is a compile-time constant; this cannot happen
		// outside a bad edit.
		slog.Error("Invalid checkout rate limit format", slog.String("error", err.Error()))
	}
	checkoutLimiter := limiter.New(memory.NewStore(), rate)

	registerStorefrontRoutes(api, cfg, services.Catalog, services.Resolver)
	registerFxRoutes(api, services.Rates)
	registerQuoteRoutes(api, services.Catalog, services.Resolver, services.Pricing)
	registerCheckoutRoutes(api, services.Checkout, middleware.RateLimit(checkoutLimiter))
	registerCartRoutes(api, services.Cart, services.Preference)
}
