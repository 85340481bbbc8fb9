package cache

import (
	"testing"
	"time"

	"github.com/robj/ethsend/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteCache_SetGet(t *testing.T) {
	c := NewQuoteCache()
	quote := domain.PriceQuote{"GBP": 2000}

	c.Set("ethereum", quote, time.Minute)

	got, ok := c.Get("ethereum")
	require.True(t, ok)
	assert.Equal(t, quote, got)
}

func TestQuoteCache_Miss(t *testing.T) {
	c := NewQuoteCache()
	_, ok := c.Get("ethereum")
	assert.False(t, ok)
}

func TestQuoteCache_Expiry(t *testing.T) {
	c := NewQuoteCache()
	c.Set("ethereum", domain.PriceQuote{"GBP": 2000}, 5*time.Millisecond)

	time.Sleep(10 * time.Millisecond)

	_, ok := c.Get("ethereum")
	assert.False(t, ok)
}

func TestQuoteCache_ZeroTTLDisables(t *testing.T) {
	c := NewQuoteCache()
	c.Set("ethereum", domain.PriceQuote{"GBP": 2000}, 0)

	_, ok := c.Get("ethereum")
	assert.False(t, ok)
}

func TestQuoteCache_Delete(t *testing.T) {
	c := NewQuoteCache()
	c.Set("ethereum", domain.PriceQuote{"GBP": 2000}, time.Minute)
	c.Delete("ethereum")

	_, ok := c.Get("ethereum")
	assert.False(t, ok)
}
