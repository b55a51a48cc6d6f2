package domain

import "github.com/shopspring/decimal"

// PreferenceItem is one settlement-priced line submitted to the payment
// processor. UnitPrice is already converted into the settlement currency and
// rounded to the processor's precision (integer units for zero-decimal
// currencies).
type PreferenceItem struct {
	Title      string
	Quantity   int64
	CurrencyID string
	UnitPrice  decimal.Decimal
}

// BackURLs are the redirect targets after a hosted checkout.
type BackURLs struct {
	Success string
	Pending string
	Failure string
}

// PreferenceRequest is the processor-agnostic shape of a checkout
// preference. BackURLs and AutoReturn are only set when the shop runs
// behind a public https base URL.
type PreferenceRequest struct {
	Items               []PreferenceItem
	StatementDescriptor string
	ExternalReference   string
	BackURLs            *BackURLs
	AutoReturn          string
	NotificationURL     string
}

// PreferenceResult identifies the created preference and its hosted
// checkout entry points.
type PreferenceResult struct {
	ID               string
	InitPoint        string
	SandboxInitPoint string
}
