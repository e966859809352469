package handlers

import (
	"errors"

	applog "grentify/internal/log"
	"grentify/internal/services"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	Checkout *services.CheckoutService
	Intents  services.IntentCreator
}

// POST /create-payment-intent — the amount crosses the provider boundary
// in integer minor units.
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var body struct {
		Price    float64 `json:"price"`
		Currency string  `json:"currency"`
	}
	if err := c.BodyParser(&body); err != nil {
		return clientError(c, fiber.StatusBadRequest, "malformed payment intent body")
	}
	if body.Price < 0 {
		return clientError(c, fiber.StatusBadRequest, "price must be non-negative")
	}
	if body.Currency == "" {
		body.Currency = "usd"
	}
	secret, err := h.Intents.CreateIntent(services.MinorUnits(body.Price), body.Currency)
	if err != nil {
		return serverError(c, "payment.intent.fail", err)
	}
	return c.JSON(fiber.Map{"clientSecret": secret})
}

// POST /payment — checkout. Both phases are reported: a recorded order
// with a failed cart cleanup is a partial success the caller reconciles,
// never a masked one.
func (h *PaymentHandler) Checkout2Phase(c *fiber.Ctx) error {
	var p services.PaymentPayload
	if err := c.BodyParser(&p); err != nil {
		return clientError(c, fiber.StatusBadRequest, "malformed payment body")
	}

	res, err := h.Checkout.Checkout(p)
	switch {
	case errors.Is(err, services.ErrMissingEmail), errors.Is(err, services.ErrEmptyCheckout):
		return clientError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrForeignCartItem):
		applog.Security(c, "checkout.ownership.reject", map[string]any{"user": p.UserEmail})
		return clientError(c, fiber.StatusForbidden, err.Error())
	case err != nil:
		return serverError(c, "checkout.fail", err)
	}

	if res.CleanupError != "" {
		applog.Error(c, "checkout.cleanup.fail", errors.New(res.CleanupError),
			map[string]any{"order_id": res.OrderID})
	}
	applog.Audit(c, "checkout.ok", map[string]any{
		"order_id": res.OrderID, "deleted": res.DeletedCount,
	})
	return c.JSON(fiber.Map{
		"paymentResult": fiber.Map{"insertedId": res.OrderID},
		"deleteResult": fiber.Map{
			"deletedCount": res.DeletedCount,
			"error":        res.CleanupError,
		},
	})
}
