package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/ports/services"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/dto"
)

// fxHandler serves cached exchange-rate tables.
type fxHandler struct {
	rateService portssvc.RateSvcFacade
}

func newFxHandler(rs portssvc.RateSvcFacade) *fxHandler {
	return &fxHandler{rateService: rs}
}

// registerFxRoutes registers the exchange-rate routes.
func registerFxRoutes(rg *gin.RouterGroup, rs portssvc.RateSvcFacade) {
	h := newFxHandler(rs)
	rg.GET("/fx", h.getRates)
}

// getRates godoc
// @Summary Exchange rates
// @Description Returns the cached rate table for a base currency; a provider outage yields the static fallback table
// @Tags fx
// @Produce json
// @Param base query string false "Base currency code" default(USD)
// @Success 200 {object} dto.FxResponse
// @Router /fx [get]
func (h *fxHandler) getRates(c *gin.Context) {
	base := c.DefaultQuery("base", "USD")
	table := h.rateService.GetRates(c.Request.Context(), base)
	c.JSON(http.StatusOK, dto.ToFxResponse(table))
}
