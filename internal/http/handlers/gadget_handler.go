package handlers

import (
	"errors"
	"strings"

	"grentify/internal/domain"
	applog "grentify/internal/log"
	"grentify/internal/repos"
	"grentify/internal/services"
	"grentify/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type GadgetHandler struct {
	Catalog *services.CatalogService
}

// gadgetQuery assembles the query builder input from raw parameters. Sort
// falls back to newest-first on anything unrecognized; page and limit are
// clamped rather than rejected.
func gadgetQuery(c *fiber.Ctx, matchDescription bool) repos.GadgetQuery {
	return repos.GadgetQuery{
		Search:           strings.TrimSpace(c.Query("search")),
		Categories:       repos.ParseCategories(c.Query("category")),
		Sort:             domain.ParseSort(c.Query("sort")),
		MatchDescription: matchDescription,
		Page:             validate.Page(c.Query("page")),
		Limit:            validate.Limit(c.Query("limit")),
	}
}

// POST /gadget
func (h *GadgetHandler) Create(c *fiber.Ctx) error {
	var g domain.Gadget
	if err := c.BodyParser(&g); err != nil {
		return clientError(c, fiber.StatusBadRequest, "malformed gadget body")
	}
	if g.Title == "" || g.Price < 0 {
		return clientError(c, fiber.StatusBadRequest, "title required, price must be non-negative")
	}
	id, err := h.Catalog.Create(g)
	if err != nil {
		return serverError(c, "gadget.create.fail", err)
	}
	applog.Audit(c, "gadget.create", map[string]any{"gadget_id": id})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"insertedId": id})
}

// GET /gadgets — full filtered result set, no pagination window.
func (h *GadgetHandler) Search(c *fiber.Ctx) error {
	gadgets, err := h.Catalog.Search(gadgetQuery(c, false))
	if err != nil {
		return serverError(c, "gadget.search.fail", err)
	}
	return c.JSON(gadgets)
}

// GET /gadgets-for-sidebar
func (h *GadgetHandler) Sidebar(c *fiber.Ctx) error {
	gadgets, err := h.Catalog.SidebarSample(4)
	if err != nil {
		return serverError(c, "gadget.sidebar.fail", err)
	}
	return c.JSON(gadgets)
}

// GET /gadgets-for-home
func (h *GadgetHandler) Home(c *fiber.Ctx) error {
	gadgets, err := h.Catalog.HomePreview(6)
	if err != nil {
		return serverError(c, "gadget.home.fail", err)
	}
	return c.JSON(gadgets)
}

// GET /gadgets/:id
func (h *GadgetHandler) ByID(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return clientError(c, fiber.StatusBadRequest, "malformed gadget id")
	}
	g, err := h.Catalog.ByID(id)
	if errors.Is(err, services.ErrNotFound) {
		return clientError(c, fiber.StatusNotFound, "gadget not found")
	}
	if err != nil {
		return serverError(c, "gadget.get.fail", err)
	}
	return c.JSON(g)
}

// GET /dashboard-gadgets
func (h *GadgetHandler) DashboardList(c *fiber.Ctx) error {
	page, err := h.Catalog.DashboardList(gadgetQuery(c, true))
	if err != nil {
		return serverError(c, "gadget.dashboard.fail", err)
	}
	return c.JSON(page)
}

// GET /dashboard-mygadgets — projected, owner-scoped when email is given.
func (h *GadgetHandler) OwnerList(c *fiber.Ctx) error {
	q := gadgetQuery(c, true)
	if raw := c.Query("email"); raw != "" {
		email, ok := validate.Email(raw)
		if !ok {
			return clientError(c, fiber.StatusBadRequest, "invalid email")
		}
		q.OwnerEmail = email
	}
	page, err := h.Catalog.OwnerList(q)
	if err != nil {
		return serverError(c, "gadget.mygadgets.fail", err)
	}
	return c.JSON(page)
}

// DELETE /dashboard-gadgets/:id — the outcome is always reported, a failed
// delete is never logged-and-forgotten.
func (h *GadgetHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return clientError(c, fiber.StatusBadRequest, "malformed gadget id")
	}
	err := h.Catalog.Delete(id)
	if errors.Is(err, services.ErrNotFound) {
		return clientError(c, fiber.StatusNotFound, "gadget not found")
	}
	if err != nil {
		return serverError(c, "gadget.delete.fail", err)
	}
	applog.Audit(c, "gadget.delete", map[string]any{"gadget_id": id})
	return c.JSON(fiber.Map{"success": true, "deletedCount": 1})
}

// GET /categories
func (h *GadgetHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.Catalog.Categories()
	if err != nil {
		return serverError(c, "gadget.categories.fail", err)
	}
	return c.JSON(cats)
}
