// Package initializer wires the application dependencies: logger,
// providers, cache, session and switcher, all built from config.
package initializer

import (
	"log/slog"

	"github.com/robj/ethsend/infra/cache"
	infra_provider "github.com/robj/ethsend/infra/provider"
	"github.com/robj/ethsend/pkg/config"
	"github.com/robj/ethsend/pkg/currency"
	"github.com/robj/ethsend/pkg/send"
	"github.com/robj/ethsend/pkg/switcher"
)

// Deps holds everything a frontend needs to drive the core.
type Deps struct {
	Config   *config.App
	Logger   *slog.Logger
	Session  *send.Session
	Switcher *switcher.Switcher
}

// InitializeDependencies builds the dependency graph from config.
func InitializeDependencies(cfg *config.App) (*Deps, error) {
	logger := setupLogger(cfg.Log)

	prices := infra_provider.NewCoinGecko(cfg.Price, logger)
	oracle := infra_provider.NewEtherscanGasOracle(cfg.Gas, logger)
	quotes := cache.NewQuoteCache()

	initial, ok := currency.FromCode(cfg.Send.Currency)
	if !ok {
		logger.Warn("configured currency not supported, falling back to default",
			"code", cfg.Send.Currency, "default", currency.Default.Code)
		initial = currency.Default
	}

	session := send.NewSession(send.Params{
		AssetID:         cfg.Send.AssetID,
		InitialCurrency: initial,
		Balance:         cfg.Send.Balance,
		PollInterval:    cfg.Send.PollInterval,
	}, prices, oracle, logger)

	sw := switcher.New(cfg.Send.AssetID, prices, quotes, cfg.Price.CacheTTL, logger)

	return &Deps{
		Config:   cfg,
		Logger:   logger,
		Session:  session,
		Switcher: sw,
	}, nil
}
