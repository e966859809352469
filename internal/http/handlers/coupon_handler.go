package handlers

import (
	"errors"

	"grentify/internal/domain"
	"grentify/internal/services"

	"github.com/gofiber/fiber/v2"
)

type CouponHandler struct {
	Coupons *services.CouponService
}

// GET /coupon-code/:code — case-sensitive presence check.
func (h *CouponHandler) Validate(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return clientError(c, fiber.StatusBadRequest, "missing coupon code")
	}
	_, err := h.Coupons.Validate(code)
	if errors.Is(err, services.ErrInvalidCoupon) {
		return clientError(c, fiber.StatusNotFound, "invalid coupon")
	}
	if err != nil {
		return serverError(c, "coupon.validate.fail", err)
	}
	return c.JSON(fiber.Map{"message": "ok"})
}

// POST /coupon-code
func (h *CouponHandler) Create(c *fiber.Ctx) error {
	var cp domain.Coupon
	if err := c.BodyParser(&cp); err != nil {
		return clientError(c, fiber.StatusBadRequest, "malformed coupon body")
	}
	if cp.Code == "" {
		return clientError(c, fiber.StatusBadRequest, "code required")
	}
	id, err := h.Coupons.Create(cp)
	if err != nil {
		return serverError(c, "coupon.create.fail", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"insertedId": id})
}
