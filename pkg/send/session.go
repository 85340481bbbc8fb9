// Package send owns the state of a single send interaction: selected
// currency, last fetched price, last user input and the gas fee estimate.
// Every state-changing event rebuilds an immutable Snapshot from the
// committed state, so concurrent readers never observe a half-updated
// view and the most recently committed write always wins.
package send

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robj/ethsend/pkg/convert"
	"github.com/robj/ethsend/pkg/currency"
	"github.com/robj/ethsend/pkg/domain"
	"github.com/robj/ethsend/pkg/provider"
)

// genericErrorMessage is what users see on any fetch failure. The cause
// is logged for diagnostics but deliberately kept out of the UI.
const genericErrorMessage = "Some error occurred"

// cryptoSymbol is the display symbol of the crypto side of a conversion.
const cryptoSymbol = "ETH"

const (
	defaultBalance      = 3450.0
	defaultPollInterval = 30 * time.Second
)

// Params configures a new session. Zero-valued fields fall back to
// defaults (ethereum, GBP, 30s poll interval).
type Params struct {
	AssetID         string
	InitialCurrency currency.Currency
	// Balance is the spendable balance in crypto units.
	Balance      float64
	PollInterval time.Duration
}

// Session is the send-screen state machine. All mutation is funneled
// through one mutex; snapshots handed out are immutable copies.
type Session struct {
	id      uuid.UUID
	assetID string
	balance float64

	prices provider.PriceSource
	oracle provider.GasOracle
	logger *slog.Logger

	mu           sync.Mutex
	currency     currency.Currency
	price        float64
	havePrice    bool
	amount       float64
	amountIsFiat bool
	fee          float64
	haveFee      bool
	latest       Snapshot
	subs         map[chan Snapshot]struct{}

	pollInterval time.Duration
	pollCancel   context.CancelFunc
}

// NewSession creates a session in the Loading state.
func NewSession(p Params, prices provider.PriceSource, oracle provider.GasOracle, logger *slog.Logger) *Session {
	if p.AssetID == "" {
		p.AssetID = "ethereum"
	}
	if p.InitialCurrency == (currency.Currency{}) {
		p.InitialCurrency = currency.Default
	}
	if p.Balance == 0 {
		p.Balance = defaultBalance
	}
	if p.PollInterval <= 0 {
		p.PollInterval = defaultPollInterval
	}
	id := uuid.New()
	return &Session{
		id:           id,
		assetID:      p.AssetID,
		balance:      p.Balance,
		prices:       prices,
		oracle:       oracle,
		logger:       logger.With("session", id.String()),
		currency:     p.InitialCurrency,
		amountIsFiat: true,
		latest:       Loading{},
		subs:         make(map[chan Snapshot]struct{}),
		pollInterval: p.PollInterval,
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Initialize fetches the price for the initial currency and transitions
// the session to Ready with a zero amount, or to Failed when the fetch
// fails. The failure is terminal until Initialize is called again.
func (s *Session) Initialize(ctx context.Context) {
	s.mu.Lock()
	cur := s.currency
	s.mu.Unlock()

	quote, err := s.prices.FetchPrice(ctx, s.assetID, []currency.Currency{cur})
	if err != nil {
		s.fail("price fetch failed", err)
		return
	}
	price, ok := quote.Price(cur.Code)
	if !ok {
		s.fail("price fetch failed", domain.ErrPriceUnavailable)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// The fetch ran against the currency captured above. If a currency
	// change committed while it was in flight, its price is fresher than
	// this one; dropping the result keeps price and currency in step.
	if s.currency != cur {
		s.logger.Info("discarding price fetched for a superseded currency",
			"fetched", cur.Code, "current", s.currency.Code)
		return
	}
	s.price = price
	s.havePrice = true
	// A user can only have typed after a previous successful init; in
	// that case keep the committed amount instead of clobbering it with
	// a stale zero snapshot.
	if _, ready := s.latest.(Ready); !ready {
		s.amount = 0
		s.amountIsFiat = true
	}
	s.publishLocked(s.buildSnapshotLocked())
}

// ChangeCurrency atomically replaces the selected currency and its price,
// then rebuilds the snapshot with the given amount. The caller supplies a
// fresh price (the picker fetched it alongside the list); no network call
// happens here.
func (s *Session) ChangeCurrency(cur currency.Currency, price float64, amount float64, amountIsFiat bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currency = cur
	if price > 0 {
		s.price = price
		s.havePrice = true
	} else {
		// Carrying the old currency's price forward would break the
		// price/currency pairing; conversions stay off until a valid
		// price arrives.
		s.logger.Warn("non-positive price supplied with currency change",
			"currency", cur.Code, "price", price)
		s.price = 0
		s.havePrice = false
	}
	s.amount = amount
	s.amountIsFiat = amountIsFiat
	s.publishLocked(s.buildSnapshotLocked())
}

// OnValueChange stores a new user amount and the unit it is denominated
// in, and rebuilds the snapshot. No network call.
func (s *Session) OnValueChange(amount float64, amountIsFiat bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.amount = amount
	s.amountIsFiat = amountIsFiat
	s.publishLocked(s.buildSnapshotLocked())
}

// Flip re-denominates the same real-world quantity in the other unit:
// flipping to fiat carries over the previous snapshot's fiat value,
// flipping to crypto carries over its crypto value. This is why flip is
// distinct from a plain value change, which would reinterpret the raw
// number in the new unit.
func (s *Session) Flip(prev Ready, toFiat bool) {
	amount := prev.CryptoValue
	if toFiat {
		amount = prev.FiatValue
	}
	s.OnValueChange(amount, toFiat)
}

// SetGasFee derives the fee estimate from the fast tier and stores it.
// The fee is advisory: it sits beside the snapshot and never gates
// send-readiness.
func (s *Session) SetGasFee(tiers domain.GasFeeTiers) {
	fee := convert.EstimateNetworkFee(tiers.Fast)
	s.mu.Lock()
	s.fee = fee
	s.haveFee = true
	s.mu.Unlock()
	s.logger.Debug("gas fee estimate updated", "fast_gwei", tiers.Fast, "fee_eth", fee)
}

// FeeEstimate returns the current network fee estimate in crypto units
// and whether one has been received yet.
func (s *Session) FeeEstimate() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fee, s.haveFee
}

// Current returns the latest snapshot.
func (s *Session) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// Subscribe returns a channel that always carries the most recent
// snapshot. A slow reader is never waited on: a pending unread snapshot
// is replaced by the newer one.
func (s *Session) Subscribe() <-chan Snapshot {
	ch := make(chan Snapshot, 1)
	s.mu.Lock()
	s.subs[ch] = struct{}{}
	ch <- s.latest
	s.mu.Unlock()
	return ch
}

// Unsubscribe removes a channel previously returned by Subscribe.
func (s *Session) Unsubscribe(ch <-chan Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for sub := range s.subs {
		if sub == ch {
			delete(s.subs, sub)
			close(sub)
			return
		}
	}
}

func (s *Session) fail(msg string, err error) {
	s.logger.Error(msg, "error", err)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.publishLocked(Failed{Message: genericErrorMessage})
}

// publishLocked replaces the latest snapshot and fans it out to
// subscribers with latest-value semantics. Caller holds s.mu.
func (s *Session) publishLocked(snap Snapshot) {
	s.latest = snap
	for ch := range s.subs {
		select {
		case ch <- snap:
		default:
			// Drop the unread stale snapshot, keep only the newest.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}

// buildSnapshotLocked derives a Ready snapshot from the committed state.
// Caller holds s.mu.
func (s *Session) buildSnapshotLocked() Ready {
	var fiat, crypto float64
	switch {
	case s.amountIsFiat:
		fiat = s.amount
		if s.havePrice {
			v, err := convert.FiatToCrypto(s.amount, s.price)
			if err != nil {
				s.logger.Warn("conversion unavailable", "error", err, "price", s.price)
			}
			crypto = v
		}
	default:
		crypto = s.amount
		if s.havePrice {
			fiat = convert.CryptoToFiat(s.amount, s.price)
		}
	}

	inputSymbol := cryptoSymbol
	if s.amountIsFiat {
		inputSymbol = s.currency.Symbol
	}

	inputText := ""
	if s.amount > 0 {
		inputText = convert.FormatDecimalPlaces(s.amount, 2)
	}

	var conversionText string
	if s.amountIsFiat {
		conversionText = convert.FormatDecimalPlaces(crypto, 6) + " " + cryptoSymbol
	} else {
		conversionText = s.currency.Symbol + convert.FormatDecimalPlaces(fiat, 0)
	}

	return Ready{
		Currency:        s.currency,
		FiatValue:       fiat,
		CryptoValue:     crypto,
		InputSymbol:     inputSymbol,
		InputText:       inputText,
		ConversionText:  conversionText,
		ExceededBalance: crypto > s.balance,
		// Strict inequalities: an amount whose crypto value equals the
		// balance exactly is neither exceeded nor sendable. Nothing is
		// sendable while no trusted price is held.
		ReadyToSend: s.havePrice && s.amount > 0 && crypto < s.balance,
	}
}
