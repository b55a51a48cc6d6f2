package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/apperrors"
	portssvc "github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/ports/services"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/dto"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/middleware"
)

// cartHandler manages persisted visitor carts and display preferences.
type cartHandler struct {
	cartService       portssvc.CartSvcFacade
	preferenceService portssvc.PreferenceSvcFacade
}

func newCartHandler(cs portssvc.CartSvcFacade, ps portssvc.PreferenceSvcFacade) *cartHandler {
	return &cartHandler{
		cartService:       cs,
		preferenceService: ps,
	}
}

// registerCartRoutes registers the cart and display-preference routes.
func registerCartRoutes(rg *gin.RouterGroup, cs portssvc.CartSvcFacade, ps portssvc.PreferenceSvcFacade) {
	h := newCartHandler(cs, ps)

	carts := rg.Group("/cart")
	{
		carts.GET("/:ownerID", h.getCart)
		carts.PUT("/:ownerID", h.replaceCart)
		carts.PUT("/:ownerID/items/:productID", h.setQuantity)
		carts.DELETE("/:ownerID/items/:productID", h.removeItem)
	}

	prefs := rg.Group("/preference")
	{
		prefs.GET("/:ownerID", h.getPreference)
		prefs.PUT("/:ownerID", h.savePreference)
	}
}

// getCart godoc
// @Summary Get a visitor cart
// @Description Returns the persisted cart for an owner, empty if none exists
// @Tags cart
// @Produce json
// @Param ownerID path string true "Cart owner ID"
// @Success 200 {object} dto.CartResponse
// @Failure 500 {object} map[string]string "Failed to read cart"
// @Router /cart/{ownerID} [get]
func (h *cartHandler) getCart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID := c.Param("ownerID")

	cart, err := h.cartService.GetCart(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to get cart", slog.String("owner_id", ownerID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get cart"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCartResponse(cart))
}

// replaceCart godoc
// @Summary Replace a visitor cart
// @Description Stores the full productID→quantity mapping, replacing whatever was persisted before
// @Tags cart
// @Accept json
// @Produce json
// @Param ownerID path string true "Cart owner ID"
// @Param cart body dto.ReplaceCartRequest true "Full cart state"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to replace cart"
// @Router /cart/{ownerID} [put]
func (h *cartHandler) replaceCart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID := c.Param("ownerID")

	var req dto.ReplaceCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for replaceCart", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cart, err := h.cartService.ReplaceCart(c.Request.Context(), ownerID, req.Items)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to replace cart", slog.String("owner_id", ownerID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to replace cart"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCartResponse(cart))
}

// setQuantity godoc
// @Summary Set a cart line quantity
// @Description Upserts one line; quantity zero removes it
// @Tags cart
// @Accept json
// @Produce json
// @Param ownerID path string true "Cart owner ID"
// @Param productID path string true "Product ID"
// @Param quantity body dto.SetQuantityRequest true "New quantity"
// @Success 200 {object} dto.CartResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to update cart"
// @Router /cart/{ownerID}/items/{productID} [put]
func (h *cartHandler) setQuantity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID := c.Param("ownerID")
	productID := c.Param("productID")

	var req dto.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for setQuantity", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cart, err := h.cartService.SetQuantity(c.Request.Context(), ownerID, productID, req.Quantity)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to set cart quantity", slog.String("owner_id", ownerID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCartResponse(cart))
}

// removeItem godoc
// @Summary Remove a cart line
// @Description Deletes one line from the cart
// @Tags cart
// @Produce json
// @Param ownerID path string true "Cart owner ID"
// @Param productID path string true "Product ID"
// @Success 200 {object} dto.CartResponse
// @Failure 500 {object} map[string]string "Failed to update cart"
// @Router /cart/{ownerID}/items/{productID} [delete]
func (h *cartHandler) removeItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID := c.Param("ownerID")
	productID := c.Param("productID")

	cart, err := h.cartService.RemoveItem(c.Request.Context(), ownerID, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to remove cart item", slog.String("owner_id", ownerID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, dto.ToCartResponse(cart))
}

// getPreference godoc
// @Summary Get the display-currency preference
// @Description Returns the stored preference, AUTO if none
// @Tags preference
// @Produce json
// @Param ownerID path string true "Owner ID"
// @Success 200 {object} dto.DisplayPreferenceResponse
// @Failure 500 {object} map[string]string "Failed to read preference"
// @Router /preference/{ownerID} [get]
func (h *cartHandler) getPreference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID := c.Param("ownerID")

	pref, err := h.preferenceService.GetDisplayPreference(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to get display preference", slog.String("owner_id", ownerID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get preference"})
		return
	}
	c.JSON(http.StatusOK, dto.DisplayPreferenceResponse{Preference: string(pref)})
}

// savePreference godoc
// @Summary Save the display-currency preference
// @Description Stores "AUTO" or an explicit currency code for an owner
// @Tags preference
// @Accept json
// @Produce json
// @Param ownerID path string true "Owner ID"
// @Param preference body dto.SaveDisplayPreferenceRequest true "New preference"
// @Success 200 {object} dto.DisplayPreferenceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to save preference"
// @Router /preference/{ownerID} [put]
func (h *cartHandler) savePreference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID := c.Param("ownerID")

	var req dto.SaveDisplayPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for savePreference", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	pref, err := h.preferenceService.SaveDisplayPreference(c.Request.Context(), ownerID, req.Preference)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to save display preference", slog.String("owner_id", ownerID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preference"})
		return
	}
	c.JSON(http.StatusOK, dto.DisplayPreferenceResponse{Preference: string(pref)})
}
