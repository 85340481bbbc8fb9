package provider

import "github.com/robj/ethsend/pkg/provider"

// Compile-time contract checks.
var (
	_ provider.PriceSource = (*CoinGecko)(nil)
	_ provider.GasOracle   = (*EtherscanGasOracle)(nil)
)
