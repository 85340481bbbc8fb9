package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/robj/ethsend/pkg/currency"
	"github.com/robj/ethsend/pkg/domain"
	"github.com/robj/ethsend/pkg/send"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPriceSource struct{}

func (stubPriceSource) FetchPrice(
	ctx context.Context,
	assetID string,
	currencies []currency.Currency,
) (domain.PriceQuote, error) {
	return domain.PriceQuote{"GBP": 2000}, nil
}

type stubGasOracle struct{}

func (stubGasOracle) FetchGasFee(ctx context.Context) (domain.GasFeeTiers, error) {
	return domain.GasFeeTiers{}, nil
}

func newSendApp(t *testing.T) (*fiber.App, *send.Session) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	session := send.NewSession(send.Params{}, stubPriceSource{}, stubGasOracle{}, logger)
	session.Initialize(context.Background())
	require.IsType(t, send.Ready{}, session.Current())

	app := fiber.New()
	SendRoutes(app, session)
	return app, session
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestSendCurrency_RejectsNonPositivePrice(t *testing.T) {
	app, session := newSendApp(t)

	for _, body := range []string{
		`{"code":"USD","price":0,"amount":100,"is_fiat":true}`,
		`{"code":"USD","price":-2500,"amount":100,"is_fiat":true}`,
	} {
		resp := postJSON(t, app, "/send/currency", body)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	}

	// The session was never touched: still GBP from initialization.
	ready := session.Current().(send.Ready)
	assert.Equal(t, currency.GBP, ready.Currency)
}

func TestSendCurrency_RejectsUnknownCode(t *testing.T) {
	app, _ := newSendApp(t)

	resp := postJSON(t, app, "/send/currency", `{"code":"XYZ","price":2500}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSendCurrency_CommitsValidChange(t *testing.T) {
	app, session := newSendApp(t)

	resp := postJSON(t, app, "/send/currency",
		`{"code":"USD","price":2500,"amount":100,"is_fiat":true}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ready", body["state"])
	assert.Equal(t, "USD", body["currency"])

	ready := session.Current().(send.Ready)
	assert.Equal(t, currency.USD, ready.Currency)
	assert.InEpsilon(t, 0.04, ready.CryptoValue, 1e-12)
}
