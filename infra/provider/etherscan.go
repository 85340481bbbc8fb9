package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/robj/ethsend/pkg/config"
	"github.com/robj/ethsend/pkg/domain"
)

// EtherscanGasOracle fetches gas price tiers from an Etherscan-style
// gastracker/gasoracle endpoint.
type EtherscanGasOracle struct {
	oracleURL  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewEtherscanGasOracle creates a gas oracle from config.
func NewEtherscanGasOracle(cfg config.GasAPI, logger *slog.Logger) *EtherscanGasOracle {
	return &EtherscanGasOracle{
		oracleURL: cfg.OracleURL,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger,
	}
}

// gasOracleResponse mirrors the oracle payload. The tier fields arrive as
// decimal strings or bare numbers depending on the backend, so they are
// declared as json.Number and parsed explicitly.
type gasOracleResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  gasOracleResult `json:"result"`
}

type gasOracleResult struct {
	SafeGasPrice    json.Number `json:"SafeGasPrice"`
	ProposeGasPrice json.Number `json:"ProposeGasPrice"`
	FastGasPrice    json.Number `json:"FastGasPrice"`
}

// FetchGasFee implements provider.GasOracle.
func (o *EtherscanGasOracle) FetchGasFee(ctx context.Context) (domain.GasFeeTiers, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.oracleURL, nil)
	if err != nil {
		return domain.GasFeeTiers{}, fmt.Errorf("%w: failed to create request: %v", domain.ErrNetwork, err)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return domain.GasFeeTiers{}, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return domain.GasFeeTiers{}, fmt.Errorf("%w: gas oracle returned status %d", domain.ErrNetwork, resp.StatusCode)
	}

	var body gasOracleResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.GasFeeTiers{}, fmt.Errorf("%w: failed to decode gas oracle response: %v", domain.ErrNetwork, err)
	}

	tiers := domain.GasFeeTiers{}
	for _, field := range []struct {
		name string
		raw  json.Number
		dst  *float64
	}{
		{"SafeGasPrice", body.Result.SafeGasPrice, &tiers.Safe},
		{"ProposeGasPrice", body.Result.ProposeGasPrice, &tiers.Propose},
		{"FastGasPrice", body.Result.FastGasPrice, &tiers.Fast},
	} {
		v, err := field.raw.Float64()
		if err != nil {
			return domain.GasFeeTiers{}, fmt.Errorf("%w: invalid %s %q", domain.ErrNetwork, field.name, field.raw)
		}
		*field.dst = v
	}

	o.logger.Debug("fetched gas fee tiers",
		"safe", tiers.Safe, "propose", tiers.Propose, "fast", tiers.Fast)
	return tiers, nil
}
