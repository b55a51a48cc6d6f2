package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrProvider indicates that the rate provider failed or returned a
// malformed payload. It never escapes the rate cache, which converts it
// into the static fallback table.
var ErrProvider = errors.New("rate provider error")

// ErrNoRate indicates that no rate exists for a needed currency pair. On
// the display path the converter masks it with an identity conversion; on
// the settlement path it surfaces as ErrPricing.
var ErrNoRate = errors.New("no exchange rate available")

// ErrFormat indicates that the display formatting backend rejected a
// currency code. Callers fall back to a plain-text rendering.
var ErrFormat = errors.New("currency format error")

// ErrPricing indicates that settlement conversion failed for a cart line.
// It aborts checkout-preference creation; it is never swallowed.
var ErrPricing = errors.New("settlement pricing error")
