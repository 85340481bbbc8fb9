// Package api exposes the core's narrow boundary over HTTP for a remote
// UI collaborator: the picker rows, the gas fee estimate and the send
// session's event entry points. The core never imports this package.
package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/robj/ethsend/pkg/currency"
	"github.com/robj/ethsend/pkg/send"
	"github.com/robj/ethsend/pkg/switcher"
)

// PriceRoutes registers the currency picker endpoint.
func PriceRoutes(app *fiber.App, sw *switcher.Switcher) {
	app.Get("/prices", func(c *fiber.Ctx) error {
		referenceAmount := c.QueryFloat("amount", 0)
		rows, err := sw.Fetch(c.Context(), referenceAmount)
		if err != nil {
			log.Errorf("Failed to fetch currency list: %v", err)
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": "Some error occurred",
			})
		}
		return c.JSON(rowsResponse(rows))
	})
}

// SendRoutes registers the send session endpoints.
func SendRoutes(app *fiber.App, session *send.Session) {
	app.Get("/send", func(c *fiber.Ctx) error {
		return c.JSON(snapshotResponse(session.Current()))
	})

	app.Get("/send/gas", func(c *fiber.Ctx) error {
		fee, ok := session.FeeEstimate()
		return c.JSON(fiber.Map{
			"fee_eth":   fee,
			"available": ok,
		})
	})

	app.Post("/send/value", func(c *fiber.Ctx) error {
		type ValueRequest struct {
			Amount float64 `json:"amount"`
			IsFiat bool    `json:"is_fiat"`
		}
		var request ValueRequest
		if err := c.BodyParser(&request); err != nil {
			log.Errorf("Failed to parse value request: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		session.OnValueChange(request.Amount, request.IsFiat)
		return c.JSON(snapshotResponse(session.Current()))
	})

	app.Post("/send/flip", func(c *fiber.Ctx) error {
		type FlipRequest struct {
			ToFiat bool `json:"to_fiat"`
		}
		var request FlipRequest
		if err := c.BodyParser(&request); err != nil {
			log.Errorf("Failed to parse flip request: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		prev, ok := session.Current().(send.Ready)
		if !ok {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "session is not ready",
			})
		}
		session.Flip(prev, request.ToFiat)
		return c.JSON(snapshotResponse(session.Current()))
	})

	app.Post("/send/currency", func(c *fiber.Ctx) error {
		type CurrencyRequest struct {
			Code   string  `json:"code"`
			Price  float64 `json:"price"`
			Amount float64 `json:"amount"`
			IsFiat bool    `json:"is_fiat"`
		}
		var request CurrencyRequest
		if err := c.BodyParser(&request); err != nil {
			log.Errorf("Failed to parse currency request: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		cur, ok := currency.FromCode(request.Code)
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "unsupported currency code",
			})
		}
		if request.Price <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "price must be positive",
			})
		}
		session.ChangeCurrency(cur, request.Price, request.Amount, request.IsFiat)
		return c.JSON(snapshotResponse(session.Current()))
	})
}
