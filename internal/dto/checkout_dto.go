package dto

// CreatePreferenceRequest is the checkout handoff payload: the cart lines
// to price in the settlement currency.
type CreatePreferenceRequest struct {
	Cart []QuoteLine `json:"cart" binding:"required,min=1,dive"`
}

// CreatePreferenceResponse identifies the created processor preference.
type CreatePreferenceResponse struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point,omitempty"`
	SandboxInitPoint string `json:"sandbox_init_point,omitempty"`
}

// WhatsAppMessageRequest asks for the WhatsApp checkout handoff text for a
// cart, priced in the visitor's display currency.
type WhatsAppMessageRequest struct {
	Cart       []QuoteLine `json:"cart" binding:"required,min=1,dive"`
	ShippingID string      `json:"shippingId,omitempty"`
	Currency   string      `json:"currency,omitempty"`
}

// WhatsAppMessageResponse carries the rendered message and the wa.me link
// that opens it.
type WhatsAppMessageResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}
