package dto

import "github.com/shopspring/decimal"

// QuoteLine identifies one cart line by product and quantity.
type QuoteLine struct {
	ID       string `json:"id" binding:"required"`
	Quantity int64  `json:"quantity" binding:"required,min=1"`
}

// QuoteRequest asks for the cart total in the visitor's display currency.
// Currency is the visitor's display preference: "AUTO" (or empty) derives
// the currency from the detected country, anything else is used verbatim.
type QuoteRequest struct {
	Cart       []QuoteLine `json:"cart" binding:"required,min=1,dive"`
	ShippingID string      `json:"shippingId,omitempty"`
	Currency   string      `json:"currency,omitempty"`
}

// QuoteResponse is the aggregated cart total. Total carries the raw
// unrounded sum; Formatted applies display rounding at the boundary.
type QuoteResponse struct {
	Total     decimal.Decimal `json:"total"`
	Currency  string          `json:"currency"`
	Formatted string          `json:"formatted"`
}
