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

// checkoutHandler hands carts off to the payment processor or WhatsApp.
type checkoutHandler struct {
	checkoutService portssvc.CheckoutSvcFacade
}

func newCheckoutHandler(cs portssvc.CheckoutSvcFacade) *checkoutHandler {
	return &checkoutHandler{checkoutService: cs}
}

// registerCheckoutRoutes registers the checkout routes. Preference creation
// is rate limited per client IP.
func registerCheckoutRoutes(rg *gin.RouterGroup, cs portssvc.CheckoutSvcFacade, rateLimit gin.HandlerFunc) {
	h := newCheckoutHandler(cs)

	rg.POST("/create_preference", rateLimit, h.createPreference)
	rg.POST("/whatsapp_message", h.whatsappMessage)
	rg.POST("/webhook/mercadopago", h.paymentWebhook)
}

// createPreference godoc
// @Summary Create a hosted checkout preference
// @Description Converts every cart line into the settlement currency and creates a payment processor preference
// @Tags checkout
// @Accept json
// @Produce json
// @Param checkout body dto.CreatePreferenceRequest true "Cart lines"
// @Success 200 {object} dto.CreatePreferenceResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown product"
// @Failure 422 {object} map[string]string "A line could not be priced for settlement"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 500 {object} map[string]string "Preference creation failed"
// @Router /create_preference [post]
func (h *checkoutHandler) createPreference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createPreference", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Carrito vacío"})
		return
	}

	resp, err := h.checkoutService.CreatePreference(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating preference", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrPricing):
			logger.Warn("Pricing error creating preference", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create preference", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creando preferencia"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// whatsappMessage godoc
// @Summary Build the WhatsApp checkout handoff
// @Description Renders the order summary in the display currency and the wa.me link that opens it
// @Tags checkout
// @Accept json
// @Produce json
// @Param order body dto.WhatsAppMessageRequest true "Cart lines, optional shipping and display preference"
// @Success 200 {object} dto.WhatsAppMessageResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown product"
// @Failure 500 {object} map[string]string "Catalog unavailable"
// @Router /whatsapp_message [post]
func (h *checkoutHandler) whatsappMessage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.WhatsAppMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for whatsappMessage", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Carrito vacío"})
		return
	}

	resp, err := h.checkoutService.BuildWhatsAppMessage(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error building WhatsApp message", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to build WhatsApp message", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo armar el mensaje"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// paymentWebhook godoc
// @Summary Payment processor webhook
// @Description Acknowledges payment notifications; processing is log-only
// @Tags checkout
// @Success 200
// @Router /webhook/mercadopago [post]
func (h *checkoutHandler) paymentWebhook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Payment webhook received",
		slog.String("query", c.Request.URL.RawQuery),
	)
	c.Status(http.StatusOK)
}
