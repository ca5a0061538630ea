package bundle

import (
	"shelf-gateway/core/logger"
	"shelf-gateway/core/zotero"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the bundle feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the bundle routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/items")
	group.Get("/:key", h.HandleItemBundle)
}

// HandleItemBundle assembles the detail bundle for one item.
// @Summary Get Item Bundle
// @Description Returns the item record together with its attachments, notes, resolved cover and related items, aggregated in one response.
// @Tags bundle
// @Accept json
// @Produce json
// @Param key path string true "Item key (8 characters, A-Z and 0-9)"
// @Success 200 {object} models.Bundle "Item Bundle"
// @Failure 400 {object} map[string]string "Invalid Key"
// @Failure 404 {object} map[string]string "Item Not Found"
// @Failure 502 {object} map[string]string "Upstream Error"
// @Router /api/items/{key} [get]
func (h *Handler) HandleItemBundle(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	key := c.Params("key")

	bundle, err := h.service.Fetch(c.Context(), key)
	if err != nil {
		l.Error("Bundle assembly failed", zap.String("item", key), zap.Error(err))
		return c.Status(zotero.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Item bundle served",
		zap.String("item", key),
		zap.Int("attachments", len(bundle.Attachments)),
		zap.Int("notes", len(bundle.Notes)),
		zap.Int("related", len(bundle.RelatedItems)))
	return c.JSON(bundle)
}
