// Package config loads application configuration from the environment,
// optionally seeded by a .env file.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// PriceAPI configures the CoinGecko-style price endpoint.
type PriceAPI struct {
	BaseURL     string        `envconfig:"BASE_URL" default:"https://api.coingecko.com/api/v3" validate:"required,url"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	// CacheTTL bounds how long a fetched multi-currency quote may be
	// reused by the currency picker. Zero disables caching.
	CacheTTL time.Duration `envconfig:"CACHE_TTL" default:"0s"`
}

// GasAPI configures the Etherscan-style gas oracle endpoint.
type GasAPI struct {
	OracleURL   string        `envconfig:"ORACLE_URL" default:"https://api.etherscan.io/api?module=gastracker&action=gasoracle" validate:"required,url"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

// Send configures a send session.
type Send struct {
	AssetID string `envconfig:"ASSET_ID" default:"ethereum" validate:"required"`
	// Currency is the code of the currency a session starts in.
	Currency string `envconfig:"CURRENCY" default:"GBP" validate:"required"`
	// Balance is the spendable balance in crypto units that entered
	// amounts are validated against.
	Balance      float64       `envconfig:"BALANCE" default:"3450"`
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"30s"`
}

// HTTP configures the fiber surface.
type HTTP struct {
	Addr string `envconfig:"ADDR" default:":3000"`
}

// Log configures the root logger.
type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	Prefix     string `envconfig:"PREFIX" default:"ethsend"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"15:04:05"`
}

// App is the root configuration.
type App struct {
	Price PriceAPI `envconfig:"PRICE_API"`
	Gas   GasAPI   `envconfig:"GAS_API"`
	Send  Send     `envconfig:"SEND"`
	HTTP  HTTP     `envconfig:"HTTP"`
	Log   Log      `envconfig:"LOG"`
}

// Load reads configuration from the environment. If envFiles are given,
// the first loadable one seeds the environment; a missing .env is not an
// error, system environment variables still apply.
func Load(envFiles ...string) (*App, error) {
	logger := slog.Default()
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	loaded := false
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil {
			logger.Debug("environment file not loaded", "path", path, "error", err)
			continue
		}
		logger.Info("environment loaded from file", "path", path)
		loaded = true
		break
	}
	if !loaded {
		logger.Warn("no .env file found, using system environment variables")
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
