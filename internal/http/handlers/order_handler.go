package handlers

import (
	"errors"

	"grentify/internal/domain"
	"grentify/internal/services"
	"grentify/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	Orders *services.OrderService
}

// POST /user-order
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var o domain.Order
	if err := c.BodyParser(&o); err != nil {
		return clientError(c, fiber.StatusBadRequest, "malformed order body")
	}
	if _, ok := validate.Email(o.UserEmail); !ok {
		return clientError(c, fiber.StatusBadRequest, "valid userEmail required")
	}
	id, err := h.Orders.Create(o)
	if err != nil {
		return serverError(c, "order.create.fail", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"insertedId": id})
}

// GET /my-orders?email
func (h *OrderHandler) List(c *fiber.Ctx) error {
	email, ok := validate.Email(c.Query("email"))
	if !ok {
		return clientError(c, fiber.StatusBadRequest, "email query parameter required")
	}
	orders, err := h.Orders.ListByUser(email)
	if err != nil {
		return serverError(c, "order.list.fail", err)
	}
	return c.JSON(orders)
}

// DELETE /my-orders/:id
func (h *OrderHandler) Remove(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return clientError(c, fiber.StatusBadRequest, "malformed order id")
	}
	err := h.Orders.Remove(id)
	if errors.Is(err, services.ErrNotFound) {
		return clientError(c, fiber.StatusNotFound, "order not found")
	}
	if err != nil {
		return serverError(c, "order.remove.fail", err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "order removed"})
}
