package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an amount in a single ISO-4217 currency. Construct via NewMoney
// so the code is always a normalized 3-letter uppercase string.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// NewMoney builds a Money value. Product and shipping prices are never
// negative, so a negative amount is rejected here.
func NewMoney(amount decimal.Decimal, currencyCode string) (Money, error) {
	code := NormalizeCurrency(currencyCode)
	if len(code) != 3 {
		return Money{}, fmt.Errorf("invalid currency code %q", currencyCode)
	}
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("negative amount %s for currency %s", amount.String(), code)
	}
	return Money{Amount: amount, Currency: code}, nil
}

// NormalizeCurrency uppercases and trims a currency code. It does not
// validate the code against any supported-currency list; unknown codes
// simply fail to format later.
func NormalizeCurrency(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

func (m Money) String() string {
	return m.Amount.String() + " " + m.Currency
}
