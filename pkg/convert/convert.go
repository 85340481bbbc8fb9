// Package convert provides the pure arithmetic behind the send screen:
// fiat/crypto conversion, network fee estimation and display rounding.
// All functions are stateless and deterministic.
package convert

import (
	"math"
	"strconv"

	"github.com/robj/ethsend/pkg/domain"
	"github.com/shopspring/decimal"
)

const (
	// transferGasLimit is the fixed gas cost of a plain ETH transfer.
	transferGasLimit = 21000
	// gweiPerEthDivisor converts a gwei gas price into the ETH display
	// unit used by the fee estimate.
	gweiPerEthDivisor = 1e8
)

// FiatToCrypto converts a fiat amount into crypto units at the given
// price per crypto unit. Returns ErrPriceUnavailable when the price is
// zero, negative or not a finite number.
func FiatToCrypto(fiat, pricePerUnit float64) (float64, error) {
	if pricePerUnit <= 0 || math.IsNaN(pricePerUnit) || math.IsInf(pricePerUnit, 0) {
		return 0, domain.ErrPriceUnavailable
	}
	return fiat / pricePerUnit, nil
}

// CryptoToFiat converts a crypto amount into fiat at the given price per
// crypto unit.
func CryptoToFiat(crypto, pricePerUnit float64) float64 {
	return crypto * pricePerUnit
}

// EstimateNetworkFee estimates the fee of a plain transfer, in crypto
// units, from a gas price in gwei.
func EstimateNetworkFee(gasPriceGwei float64) float64 {
	return (transferGasLimit * gasPriceGwei) / gweiPerEthDivisor
}

// FormatDecimalPlaces renders a value for display. Integral values are
// rendered with no decimals regardless of places; everything else gets
// exactly places digits, rounded half-up. The integral special case is
// deliberate UX behavior, not an optimization.
func FormatDecimalPlaces(value float64, places int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "0"
	}
	if value == math.Trunc(value) {
		return strconv.FormatFloat(value, 'f', 0, 64)
	}
	return decimal.NewFromFloat(value).StringFixed(int32(places))
}
