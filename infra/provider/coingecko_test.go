package provider

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/robj/ethsend/pkg/config"
	"github.com/robj/ethsend/pkg/currency"
	"github.com/robj/ethsend/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCoinGecko(baseURL string) *CoinGecko {
	return NewCoinGecko(config.PriceAPI{
		BaseURL:     baseURL,
		HTTPTimeout: time.Second,
	}, testLogger())
}

func TestCoinGecko_FetchPrice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Equal(t, "ethereum", r.URL.Query().Get("ids"))
		assert.Equal(t, "gbp,eur,usd", r.URL.Query().Get("vs_currencies"))
		_, _ = w.Write([]byte(`{"ethereum":{"gbp":2000.5,"eur":2300,"usd":2500}}`))
	}))
	defer srv.Close()

	quote, err := newCoinGecko(srv.URL).FetchPrice(
		context.Background(), "ethereum", currency.Supported())
	require.NoError(t, err)

	// Lowercase response keys resolve to canonical codes.
	require.Len(t, quote, 3)
	price, ok := quote.Price("GBP")
	require.True(t, ok)
	assert.InEpsilon(t, 2000.5, price, 1e-12)
}

func TestCoinGecko_DropsUnknownCurrencyCodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ethereum":{"gbp":2000,"xau":1.1,"btc":0.03}}`))
	}))
	defer srv.Close()

	quote, err := newCoinGecko(srv.URL).FetchPrice(
		context.Background(), "ethereum", currency.Supported())
	require.NoError(t, err)
	assert.Len(t, quote, 1)
	_, ok := quote.Price("GBP")
	assert.True(t, ok)
}

func TestCoinGecko_AssetMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := newCoinGecko(srv.URL).FetchPrice(
		context.Background(), "ethereum", currency.Supported())
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestCoinGecko_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newCoinGecko(srv.URL).FetchPrice(
		context.Background(), "ethereum", currency.Supported())
	assert.ErrorIs(t, err, domain.ErrNetwork)
}

func TestCoinGecko_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newCoinGecko(srv.URL).FetchPrice(
		context.Background(), "ethereum", currency.Supported())
	assert.ErrorIs(t, err, domain.ErrNetwork)
}
