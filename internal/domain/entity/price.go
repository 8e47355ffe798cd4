package entity

import "github.com/shopspring/decimal"

// PriceQuote maps a price-oracle identifier (e.g. "ethereum") to its USD unit price.
// Identifiers the oracle does not know are absent rather than zero.
type PriceQuote map[string]decimal.Decimal

// USD returns the price for id, or zero and false when it was not quoted.
func (q PriceQuote) USD(id string) (decimal.Decimal, bool) {
	p, ok := q[id]
	return p, ok
}
