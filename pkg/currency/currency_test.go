package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCode_CaseInsensitive(t *testing.T) {
	for _, code := range []string{"GBP", "gbp", "Gbp"} {
		got, ok := FromCode(code)
		require.True(t, ok, "code %q should resolve", code)
		assert.Equal(t, GBP, got)
	}
}

func TestFromCode_Unknown(t *testing.T) {
	_, ok := FromCode("XYZ")
	assert.False(t, ok)
}

func TestSupportedOrder(t *testing.T) {
	assert.Equal(t, []Currency{GBP, EUR, USD}, Supported())
	assert.Equal(t, []string{"GBP", "EUR", "USD"}, Codes())
}

func TestSupportedIsACopy(t *testing.T) {
	list := Supported()
	list[0] = Currency{Code: "ZZZ"}
	got, ok := FromCode("GBP")
	require.True(t, ok)
	assert.Equal(t, "GBP", got.Code)
}
