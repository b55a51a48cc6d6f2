package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/ports/services"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/dto"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/middleware"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/platform/config"
)

// storefrontHandler serves the shop config, catalog and geo lookups.
type storefrontHandler struct {
	catalogService  portssvc.CatalogSvcFacade
	resolverService portssvc.ResolverSvcFacade
	baseURL         string
}

func newStorefrontHandler(cs portssvc.CatalogSvcFacade, rs portssvc.ResolverSvcFacade, baseURL string) *storefrontHandler {
	return &storefrontHandler{
		catalogService:  cs,
		resolverService: rs,
		baseURL:         baseURL,
	}
}

// registerStorefrontRoutes registers the read-only storefront routes.
func registerStorefrontRoutes(rg *gin.RouterGroup, cfg *config.Config, cs portssvc.CatalogSvcFacade, rs portssvc.ResolverSvcFacade) {
	h := newStorefrontHandler(cs, rs, cfg.BaseURL())

	rg.GET("/health", h.health)
	rg.GET("/geo", h.geo)
	rg.GET("/config", h.config)
	rg.GET("/catalog", h.catalog)
}

// health godoc
// @Summary Health check
// @Description Reports service liveness
// @Tags storefront
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func (h *storefrontHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "ts": time.Now().UnixMilli()})
}

// geo godoc
// @Summary Detect visitor country
// @Description Returns the visitor's country code, falling back to the shop country when geo lookup is unavailable
// @Tags storefront
// @Produce json
// @Success 200 {object} dto.GeoResponse
// @Router /geo [get]
func (h *storefrontHandler) geo(c *gin.Context) {
	country := h.resolverService.DetectedCountry(c.Request.Context())
	c.JSON(http.StatusOK, dto.GeoResponse{CountryCode: country})
}

// config godoc
// @Summary Shop configuration
// @Description Returns the shop block and public base URL
// @Tags storefront
// @Produce json
// @Success 200 {object} dto.ConfigResponse
// @Router /config [get]
func (h *storefrontHandler) config(c *gin.Context) {
	shop := h.catalogService.Shop(c.Request.Context())
	c.JSON(http.StatusOK, dto.ConfigResponse{
		Shop:    dto.ToShopResponse(shop),
		BaseURL: h.baseURL,
	})
}

// catalog godoc
// @Summary Full catalog
// @Description Returns the shop configuration and product list
// @Tags storefront
// @Produce json
// @Success 200 {object} dto.CatalogResponse
// @Failure 500 {object} map[string]string "Catalog unavailable"
// @Router /catalog [get]
func (h *storefrontHandler) catalog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	catalog, err := h.catalogService.Catalog(c.Request.Context())
	if err != nil {
		logger.Error("Failed to load catalog", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo leer el catálogo"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCatalogResponse(catalog))
}
