package convert

import (
	"testing"

	"github.com/robj/ethsend/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiatToCrypto(t *testing.T) {
	got, err := FiatToCrypto(1, 2000)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.0005, got, 1e-12)
}

func TestFiatToCrypto_InvalidPrice(t *testing.T) {
	tests := []struct {
		name  string
		price float64
	}{
		{"zero price", 0},
		{"negative price", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FiatToCrypto(100, tt.price)
			assert.ErrorIs(t, err, domain.ErrPriceUnavailable)
		})
	}
}

func TestCryptoToFiat(t *testing.T) {
	assert.InEpsilon(t, 100.0, CryptoToFiat(0.05, 2000), 1e-12)
}

func TestConversionRoundTrip(t *testing.T) {
	prices := []float64{0.5, 1, 123.45, 2000, 1e6}
	for _, price := range prices {
		fiat := CryptoToFiat(7.5, price)
		crypto, err := FiatToCrypto(fiat, price)
		require.NoError(t, err)
		assert.InEpsilon(t, 7.5, crypto, 1e-9)
	}
}

func TestEstimateNetworkFee(t *testing.T) {
	assert.Zero(t, EstimateNetworkFee(0))
	assert.InEpsilon(t, 21000.0, EstimateNetworkFee(1e8), 1e-12)
	assert.InEpsilon(t, 0.0105, EstimateNetworkFee(50), 1e-12)
}

func TestFormatDecimalPlaces(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		places int
		want   string
	}{
		{"integral value ignores places", 5.0, 2, "5"},
		{"fractional value keeps places", 5.5, 2, "5.50"},
		{"zero", 0.0, 0, "0"},
		{"sub-unit crypto amount", 0.0005, 6, "0.000500"},
		{"rounds half-up", 1.005, 2, "1.01"},
		{"negative integral", -3.0, 2, "-3"},
		{"negative fractional", -3.25, 2, "-3.25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDecimalPlaces(tt.value, tt.places))
		})
	}
}
