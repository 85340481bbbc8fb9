package domain

import "errors"

var (
	// ErrNetwork is returned when a remote call fails at the transport
	// level, times out, or answers with a non-2xx status.
	ErrNetwork = errors.New("network request failed")

	// ErrAssetNotFound is returned when a successful price response does
	// not contain the requested asset.
	ErrAssetNotFound = errors.New("asset not found in price response")

	// ErrPriceUnavailable is returned when a conversion is attempted with
	// a zero, negative or missing price.
	ErrPriceUnavailable = errors.New("price unavailable for conversion")
)
