package library

import (
	"shelf-gateway/core/logger"
	"shelf-gateway/core/zotero"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the library feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the library routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api")
	group.Get("/items", h.HandleListItems)
	group.Get("/collections", h.HandleListCollections)
	group.Get("/collections/default", h.HandleDefaultCollection)
}

// HandleListItems lists the library's top-level items.
// @Summary List Library Items
// @Description Lists top-level items in title order, enriched with attachments and a resolved cover image unless covers=false.
// @Tags library
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of items (default 100)"
// @Param covers query boolean false "Attach cover images (default true)"
// @Param refresh query boolean false "Bypass the listing cache"
// @Success 200 {array} models.LibraryItem "Items"
// @Failure 502 {object} map[string]string "Upstream Error"
// @Router /api/items [get]
func (h *Handler) HandleListItems(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	limit := c.QueryInt("limit", 0)
	withCovers := c.QueryBool("covers", true)
	refresh := c.QueryBool("refresh", false)

	items, err := h.service.ListItems(c.Context(), limit, withCovers, refresh)
	if err != nil {
		l.Error("Item listing failed", zap.Error(err))
		return c.Status(zotero.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Item listing served",
		zap.Int("count", len(items)),
		zap.Bool("covers", withCovers))
	return c.JSON(items)
}

// HandleListCollections lists the served collection tree.
// @Summary List Collections
// @Description Lists the configured root collection and its direct sub-collections, or the library's top-level collections when no root is configured.
// @Tags library
// @Accept json
// @Produce json
// @Success 200 {array} zotero.Collection "Collections"
// @Failure 502 {object} map[string]string "Upstream Error"
// @Router /api/collections [get]
func (h *Handler) HandleListCollections(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	cols, err := h.service.Collections(c.Context())
	if err != nil {
		l.Error("Collection listing failed", zap.Error(err))
		return c.Status(zotero.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(cols)
}

// HandleDefaultCollection suggests the collection a fresh view should open.
// @Summary Suggest Default Collection
// @Description Probes the served collections in order and returns the key of the first one that contains items. The key is null when no collections are served.
// @Tags library
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Default Collection Key"
// @Failure 502 {object} map[string]string "Upstream Error"
// @Router /api/collections/default [get]
func (h *Handler) HandleDefaultCollection(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	cols, err := h.service.Collections(c.Context())
	if err != nil {
		l.Error("Collection listing failed", zap.Error(err))
		return c.Status(zotero.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	key, err := h.service.FindFirstNonEmptyCollection(c.Context(), cols)
	if err != nil {
		l.Error("Default collection probe failed", zap.Error(err))
		return c.Status(zotero.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	if key == "" {
		return c.JSON(fiber.Map{"key": nil})
	}
	return c.JSON(fiber.Map{"key": key})
}
