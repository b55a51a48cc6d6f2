package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateTable holds the exchange rates for one base currency, as returned by
// the rate provider. 1 unit of Base equals Rates[X] units of X. Tables are
// replaced wholesale on refresh, never mutated in place.
type RateTable struct {
	Base      string                     `json:"base"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	FetchedAt time.Time                  `json:"fetchedAt"`
}

// Rate returns the rate from the base to the given currency. The base rate
// to itself is conceptually 1 and may be absent from the provider payload,
// so absence for the base is treated as identity. Missing or non-positive
// rates for any other currency report ok=false.
func (t RateTable) Rate(code string) (decimal.Decimal, bool) {
	code = NormalizeCurrency(code)
	if r, found := t.Rates[code]; found {
		if r.IsPositive() {
			return r, true
		}
		return decimal.Decimal{}, false
	}
	if code == NormalizeCurrency(t.Base) {
		return decimal.NewFromInt(1), true
	}
	return decimal.Decimal{}, false
}

// Expired reports whether the table is stale for the given TTL at time now.
func (t RateTable) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(t.FetchedAt) >= ttl
}
