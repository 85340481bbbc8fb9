// Package provider implements the remote price and gas data sources
// consumed by the state engines. The clients are thin: decode, validate,
// map to domain values. No retries here.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/robj/ethsend/pkg/config"
	"github.com/robj/ethsend/pkg/currency"
	"github.com/robj/ethsend/pkg/domain"
)

// CoinGecko fetches asset prices from a CoinGecko-compatible
// /simple/price endpoint.
type CoinGecko struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewCoinGecko creates a price source from config.
func NewCoinGecko(cfg config.PriceAPI, logger *slog.Logger) *CoinGecko {
	return &CoinGecko{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger,
	}
}

// FetchPrice implements provider.PriceSource.
//
// The endpoint keys its response by lowercase currency code; codes are
// matched case-insensitively against the closed currency set and codes
// outside the set are dropped, tolerating server-side superset responses.
func (c *CoinGecko) FetchPrice(ctx context.Context, assetID string, currencies []currency.Currency) (domain.PriceQuote, error) {
	codes := make([]string, len(currencies))
	for i, cur := range currencies {
		codes[i] = strings.ToLower(cur.Code)
	}

	q := url.Values{}
	q.Set("ids", assetID)
	q.Set("vs_currencies", strings.Join(codes, ","))
	reqURL := fmt.Sprintf("%s/simple/price?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", domain.ErrNetwork, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: price API returned status %d", domain.ErrNetwork, resp.StatusCode)
	}

	// assetID -> currency code (lowercase) -> price
	var body map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: failed to decode price response: %v", domain.ErrNetwork, err)
	}

	prices, ok := body[assetID]
	if !ok || prices == nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrAssetNotFound, assetID)
	}

	quote := make(domain.PriceQuote, len(prices))
	for code, price := range prices {
		cur, ok := currency.FromCode(code)
		if !ok {
			c.logger.Debug("dropping unknown currency code from price response", "code", code)
			continue
		}
		quote[cur.Code] = price
	}

	c.logger.Info("fetched price quote", "asset", assetID, "currencies", len(quote))
	return quote, nil
}
