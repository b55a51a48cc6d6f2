package utils

import (
	"fmt"

	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/apperrors"
	"github.com/fabiograbrielfr-cell/runandsport-pro/internal/core/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// The shop renders prices in the Uruguayan Spanish locale with zero
// fraction digits, matching the storefront display convention.
var shopLocale = language.MustParse("es-UY")

// FormatMoney renders an amount for display in the shop locale, rounding to
// whole units at this boundary only (the stored totals stay unrounded). A
// currency code the formatting backend cannot render degrades to
// "CODE 1.234" so the caller always gets a string to show.
func FormatMoney(amount decimal.Decimal, currencyCode string) string {
	code := domain.NormalizeCurrency(currencyCode)
	p := message.NewPrinter(shopLocale)
	formatted := number.Decimal(amount.Round(0).InexactFloat64(), number.MaxFractionDigits(0))

	symbol, err := currencySymbol(code)
	if err != nil {
		// Plain-text fallback, never an error.
		return p.Sprintf("%s %v", code, formatted)
	}
	return p.Sprintf("%s %v", symbol, formatted)
}

// currencySymbol resolves the locale symbol for an ISO-4217 code.
func currencySymbol(code string) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", apperrors.ErrFormat, code, err)
	}
	p := message.NewPrinter(shopLocale)
	return p.Sprint(currency.Symbol(unit)), nil
}
