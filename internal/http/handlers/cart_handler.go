package handlers

import (
	"errors"

	"grentify/internal/domain"
	"grentify/internal/services"
	"grentify/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type CartHandler struct {
	Cart *services.CartService
}

// POST /user-cart
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var it domain.CartItem
	if err := c.BodyParser(&it); err != nil {
		return clientError(c, fiber.StatusBadRequest, "malformed cart item body")
	}
	if _, ok := validate.Email(it.UserEmail); !ok {
		return clientError(c, fiber.StatusBadRequest, "valid userEmail required")
	}
	id, err := h.Cart.Add(it)
	if err != nil {
		return serverError(c, "cart.add.fail", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"insertedId": id})
}

// GET /my-cart?email — a missing email is rejected before the store is
// touched.
func (h *CartHandler) List(c *fiber.Ctx) error {
	email, ok := validate.Email(c.Query("email"))
	if !ok {
		return clientError(c, fiber.StatusBadRequest, "email query parameter required")
	}
	items, err := h.Cart.ListByUser(email)
	if err != nil {
		return serverError(c, "cart.list.fail", err)
	}
	return c.JSON(items)
}

// DELETE /my-cart/:id
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return clientError(c, fiber.StatusBadRequest, "malformed cart item id")
	}
	err := h.Cart.Remove(id)
	if errors.Is(err, services.ErrNotFound) {
		return clientError(c, fiber.StatusNotFound, "cart item not found")
	}
	if err != nil {
		return serverError(c, "cart.remove.fail", err)
	}
	return c.JSON(fiber.Map{"success": true, "message": "cart item removed"})
}
