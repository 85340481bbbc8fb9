// Package domain holds the transient value types and error taxonomy shared
// by the price providers and state engines.
package domain

// PriceQuote maps an uppercase currency code to the price of one crypto
// unit in that currency. A quote is a point-in-time value: a newer fetch
// replaces it wholesale, never merges into it.
type PriceQuote map[string]float64

// Price returns the quoted price for a currency code, if present.
func (q PriceQuote) Price(code string) (float64, bool) {
	p, ok := q[code]
	return p, ok
}

// GasFeeTiers holds the three gas price tiers reported by the gas oracle,
// in gwei. Only Fast is consumed for the fee estimate.
type GasFeeTiers struct {
	Safe    float64
	Propose float64
	Fast    float64
}
