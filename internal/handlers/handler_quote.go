package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/apperrors"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/domain"
	portssvc "github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/ports/services"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/dto"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/middleware"
)

// quoteHandler prices carts in the visitor's display currency.
type quoteHandler struct {
	catalogService  portssvc.CatalogSvcFacade
	resolverService portssvc.ResolverSvcFacade
	pricingService  portssvc.PricingSvcFacade
}

func newQuoteHandler(cs portssvc.CatalogSvcFacade, rs portssvc.ResolverSvcFacade, ps portssvc.PricingSvcFacade) *quoteHandler {
	return &quoteHandler{
		catalogService:  cs,
		resolverService: rs,
		pricingService:  ps,
	}
}

// registerQuoteRoutes registers the quote routes.
func registerQuoteRoutes(rg *gin.RouterGroup, cs portssvc.CatalogSvcFacade, rs portssvc.ResolverSvcFacade, ps portssvc.PricingSvcFacade) {
	h := newQuoteHandler(cs, rs, ps)
	rg.POST("/quote", h.quote)
}

// quote godoc
// @Summary Quote a cart total
// @Description Aggregates the cart lines plus optional shipping into one total in the visitor's display currency
// @Tags quote
// @Accept json
// @Produce json
// @Param quote body dto.QuoteRequest true "Cart lines, optional shipping and display preference"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Unknown product or shipping option"
// @Failure 500 {object} map[string]string "Catalog unavailable"
// @Router /quote [post]
func (h *quoteHandler) quote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for quote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	catalog, err := h.catalogService.Catalog(ctx)
	if err != nil {
		logger.Error("Failed to load catalog for quote", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo leer el catálogo"})
		return
	}

	lines := make([]domain.CartLine, 0, len(req.Cart))
	for _, item := range req.Cart {
		product, found := catalog.Product(strings.TrimSpace(item.ID))
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado: " + item.ID})
			return
		}
		lines = append(lines, domain.CartLine{
			ProductID: product.ID,
			Title:     product.Title,
			UnitPrice: product.Price,
			Quantity:  item.Quantity,
		})
	}

	var shipping *domain.ShippingOption
	if req.ShippingID != "" {
		option, err := h.catalogService.ShippingOption(ctx, req.ShippingID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Envío no encontrado: " + req.ShippingID})
				return
			}
			logger.Error("Failed to resolve shipping option", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo leer el catálogo"})
			return
		}
		shipping = &option
	}

	display := h.resolverService.DisplayCurrency(ctx, domain.ParseDisplayPreference(req.Currency))
	total := h.pricingService.ComputeCartTotal(ctx, lines, shipping, display)

	c.JSON(http.StatusOK, dto.QuoteResponse{
		Total:     total.Amount,
		Currency:  total.Currency,
		Formatted: h.pricingService.FormatMoney(total.Amount, total.Currency),
	})
}
