// Package provider defines the contracts the state engines consume to
// reach remote price and gas data. Implementations live under
// infra/provider; none of them retry — retry policy belongs to callers.
package provider

import (
	"context"

	"github.com/robj/ethsend/pkg/currency"
	"github.com/robj/ethsend/pkg/domain"
)

// PriceSource fetches the current price of one crypto asset in a set of
// fiat currencies.
type PriceSource interface {
	// FetchPrice returns a quote keyed by canonical currency code.
	// Fails with domain.ErrAssetNotFound when the response does not
	// contain assetID, and with domain.ErrNetwork on transport errors,
	// timeouts or non-2xx statuses.
	FetchPrice(ctx context.Context, assetID string, currencies []currency.Currency) (domain.PriceQuote, error)
}

// GasOracle fetches the current gas price tiers.
type GasOracle interface {
	// FetchGasFee fails with domain.ErrNetwork analogously to FetchPrice.
	FetchGasFee(ctx context.Context) (domain.GasFeeTiers, error)
}
