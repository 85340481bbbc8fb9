package send

import "github.com/robj/ethsend/pkg/currency"

// Snapshot is the sealed set of states a send session can present to its
// UI. Snapshots are immutable; every state-changing event produces a
// brand-new value, the previous one is never touched.
type Snapshot interface {
	sendSnapshot()
}

// Loading is the initial state, before the first price fetch completes.
type Loading struct{}

// Failed is emitted when a fetch fails. Message is a fixed user-facing
// placeholder; the underlying cause is logged, never shown.
type Failed struct {
	Message string
}

// Ready carries the fully derived view of the session. It is re-entrant:
// once a session is Ready it stays Ready, every subsequent event re-emits
// it with updated fields.
type Ready struct {
	Currency    currency.Currency
	FiatValue   float64
	CryptoValue float64
	// InputSymbol is the symbol of the unit the user is typing in, the
	// fiat symbol or "ETH".
	InputSymbol string
	// InputText is the user amount rendered for display, empty while the
	// amount is zero.
	InputText string
	// ConversionText is the opposite-unit value rendered for display.
	ConversionText  string
	ExceededBalance bool
	ReadyToSend     bool
}

func (Loading) sendSnapshot() {}
func (Failed) sendSnapshot()  {}
func (Ready) sendSnapshot()   {}
