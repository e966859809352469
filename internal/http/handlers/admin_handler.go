package handlers

import (
	"grentify/internal/domain"
	"grentify/internal/repos"
	"grentify/internal/services"
	"grentify/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	Admin *services.AdminService
}

// GET /alluser?page&limit&role&status&search
// Unknown role or status values are rejected rather than silently matching
// nothing.
func (h *AdminHandler) Users(c *fiber.Ctx) error {
	var f repos.UserFilter
	if raw := c.Query("role"); raw != "" {
		role, ok := domain.ParseRole(raw)
		if !ok {
			return clientError(c, fiber.StatusBadRequest, "unknown role filter")
		}
		f.Role = role
	}
	if raw := c.Query("status"); raw != "" {
		status, ok := domain.ParseStatus(raw)
		if !ok {
			return clientError(c, fiber.StatusBadRequest, "unknown status filter")
		}
		f.Status = status
	}
	f.Search = c.Query("search")

	page, err := h.Admin.ListUsers(f, validate.Page(c.Query("page")), validate.Limit(c.Query("limit")))
	if err != nil {
		return serverError(c, "admin.users.fail", err)
	}
	return c.JSON(page)
}

// GET /user-status
func (h *AdminHandler) UserStatusFacets(c *fiber.Ctx) error {
	facets, err := h.Admin.UserStatusFacets()
	if err != nil {
		return serverError(c, "admin.facets.fail", err)
	}
	return c.JSON(facets)
}

// GET /all-orders?page&limit
func (h *AdminHandler) Orders(c *fiber.Ctx) error {
	page, err := h.Admin.ListOrders(validate.Page(c.Query("page")), validate.Limit(c.Query("limit")))
	if err != nil {
		return serverError(c, "admin.orders.fail", err)
	}
	return c.JSON(page)
}
