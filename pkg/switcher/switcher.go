// Package switcher builds the selectable currency list for the picker:
// one row per supported currency with the asset price and two preformatted
// display strings.
package switcher

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/robj/ethsend/pkg/convert"
	"github.com/robj/ethsend/pkg/currency"
	"github.com/robj/ethsend/pkg/domain"
	"github.com/robj/ethsend/pkg/provider"
)

const genericErrorMessage = "Some error occurred"

// Row is one selectable currency entry.
type Row struct {
	Currency currency.Currency
	// Price is the raw price of one crypto unit in this currency.
	Price float64
	// ConversionText is the crypto amount the reference fiat amount buys
	// in this currency, at 2 decimal places.
	ConversionText string
	// UnitPriceText is the reference amount (or the raw price when none
	// was entered) prefixed with the currency symbol, at 0 decimal places.
	UnitPriceText string
}

// Snapshot is the sealed state presented to the picker UI.
type Snapshot interface {
	switcherSnapshot()
}

// Loading is the initial state, before the first fetch completes.
type Loading struct{}

// Failed is emitted when the fetch fails; Message is a fixed placeholder.
type Failed struct {
	Message string
}

// Loaded carries the built rows.
type Loaded struct {
	Rows []Row
}

func (Loading) switcherSnapshot() {}
func (Failed) switcherSnapshot()  {}
func (Loaded) switcherSnapshot()  {}

// QuoteCache is the cache the switcher consults before hitting the price
// source. infra/cache provides the in-memory implementation.
type QuoteCache interface {
	Get(assetID string) (domain.PriceQuote, bool)
	Set(assetID string, quote domain.PriceQuote, ttl time.Duration)
}

// Switcher fetches a multi-currency quote once per request and derives
// the picker rows. Concurrent fetches for the same asset are collapsed
// into one upstream call; a short-lived cache absorbs rapid re-entry
// into the picker (TTL zero disables it).
type Switcher struct {
	assetID string
	prices  provider.PriceSource
	quotes  QuoteCache
	ttl     time.Duration
	group   singleflight.Group
	logger  *slog.Logger

	mu     sync.Mutex
	latest Snapshot
}

// New creates a switcher for one asset.
func New(assetID string, prices provider.PriceSource, quotes QuoteCache, ttl time.Duration, logger *slog.Logger) *Switcher {
	return &Switcher{
		assetID: assetID,
		prices:  prices,
		quotes:  quotes,
		ttl:     ttl,
		logger:  logger,
		latest:  Loading{},
	}
}

// Current returns the latest snapshot.
func (s *Switcher) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// Fetch retrieves prices for every supported currency and builds the
// rows relative to referenceAmount (the raw price stands in when the
// reference is not positive). The returned error keeps the provider's
// taxonomy; the recorded snapshot carries only the generic message.
func (s *Switcher) Fetch(ctx context.Context, referenceAmount float64) ([]Row, error) {
	quote, err := s.fetchQuote(ctx)
	if err != nil {
		s.logger.Error("currency list fetch failed", "asset", s.assetID, "error", err)
		s.setLatest(Failed{Message: genericErrorMessage})
		return nil, fmt.Errorf("failed to fetch currency list: %w", err)
	}

	rows := buildRows(quote, referenceAmount)
	s.setLatest(Loaded{Rows: rows})
	return rows, nil
}

func (s *Switcher) fetchQuote(ctx context.Context) (domain.PriceQuote, error) {
	if quote, ok := s.quotes.Get(s.assetID); ok {
		return quote, nil
	}
	v, err, _ := s.group.Do(s.assetID, func() (any, error) {
		quote, err := s.prices.FetchPrice(ctx, s.assetID, currency.Supported())
		if err != nil {
			return nil, err
		}
		s.quotes.Set(s.assetID, quote, s.ttl)
		return quote, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(domain.PriceQuote), nil
}

func (s *Switcher) setLatest(snap Snapshot) {
	s.mu.Lock()
	s.latest = snap
	s.mu.Unlock()
}

// buildRows derives one row per supported currency present in the quote,
// in display order. Codes the backend returned outside the supported set
// never reach here; the provider already dropped them.
func buildRows(quote domain.PriceQuote, referenceAmount float64) []Row {
	rows := make([]Row, 0, len(quote))
	for _, cur := range currency.Supported() {
		price, ok := quote.Price(cur.Code)
		if !ok {
			continue
		}
		amount := referenceAmount
		if amount <= 0 {
			amount = price
		}
		rows = append(rows, Row{
			Currency:       cur,
			Price:          price,
			ConversionText: convert.FormatDecimalPlaces(amount/price, 2),
			UnitPriceText:  cur.Symbol + convert.FormatDecimalPlaces(amount, 0),
		})
	}
	return rows
}
