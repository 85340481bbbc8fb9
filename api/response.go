package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/robj/ethsend/pkg/send"
	"github.com/robj/ethsend/pkg/switcher"
)

func snapshotResponse(snap send.Snapshot) fiber.Map {
	switch s := snap.(type) {
	case send.Loading:
		return fiber.Map{"state": "loading"}
	case send.Failed:
		return fiber.Map{"state": "error", "message": s.Message}
	case send.Ready:
		return fiber.Map{
			"state":            "ready",
			"currency":         s.Currency.Code,
			"fiat_value":       s.FiatValue,
			"crypto_value":     s.CryptoValue,
			"input_symbol":     s.InputSymbol,
			"input_text":       s.InputText,
			"conversion_text":  s.ConversionText,
			"exceeded_balance": s.ExceededBalance,
			"ready_to_send":    s.ReadyToSend,
		}
	default:
		return fiber.Map{"state": "unknown"}
	}
}

func rowsResponse(rows []switcher.Row) []fiber.Map {
	out := make([]fiber.Map, len(rows))
	for i, r := range rows {
		out[i] = fiber.Map{
			"code":            r.Currency.Code,
			"name":            r.Currency.Name,
			"symbol":          r.Currency.Symbol,
			"price":           r.Price,
			"conversion_text": r.ConversionText,
			"unit_price_text": r.UnitPriceText,
		}
	}
	return out
}
