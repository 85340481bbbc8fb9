// Package currency defines the closed set of fiat currencies the app can
// display prices in.
//
// Invariants:
//   - The set is fixed at build time; currencies are value objects and
//     never mutated.
//   - Code is the unique key and is always stored uppercase.
package currency

import "strings"

// Currency describes a single displayable fiat currency.
type Currency struct {
	Code   string // ISO-style code, e.g. "USD"
	Name   string
	Symbol string
	Icon   string // flag icon asset reference for the picker UI
}

// String returns the currency code.
func (c Currency) String() string { return c.Code }

// Supported fiat currencies.
var (
	GBP = Currency{Code: "GBP", Name: "Pounds", Symbol: "£", Icon: "ic_uk"}
	EUR = Currency{Code: "EUR", Name: "Euros", Symbol: "€", Icon: "ic_europe"}
	USD = Currency{Code: "USD", Name: "Dollars", Symbol: "$", Icon: "ic_usa"}
)

// Default is the currency a new session starts in.
var Default = GBP

var supported = []Currency{GBP, EUR, USD}

// Supported returns all registered currencies in display order.
func Supported() []Currency {
	out := make([]Currency, len(supported))
	copy(out, supported)
	return out
}

// Codes returns the codes of all registered currencies.
func Codes() []string {
	codes := make([]string, len(supported))
	for i, c := range supported {
		codes[i] = c.Code
	}
	return codes
}

// FromCode finds a currency by code, case-insensitively. Backends key
// price responses by lowercase code, so lookups must tolerate any casing.
func FromCode(code string) (Currency, bool) {
	for _, c := range supported {
		if strings.EqualFold(c.Code, code) {
			return c, true
		}
	}
	return Currency{}, false
}
