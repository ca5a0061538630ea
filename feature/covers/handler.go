package covers

import (
	"shelf-gateway/core/logger"
	"shelf-gateway/core/zotero"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the covers feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the covers routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/covers")
	group.Get("/report", h.HandleCoverReport)
}

// HandleCoverReport audits cover coverage across the library.
// @Summary Audit Cover Coverage
// @Description Resolves a cover for every listed item and reports per-item outcomes plus aggregate counts. This walks the whole listing and may take a while on large libraries.
// @Tags covers
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of items to audit"
// @Success 200 {object} models.Report "Cover Report"
// @Failure 502 {object} map[string]string "Upstream Error"
// @Router /api/covers/report [get]
func (h *Handler) HandleCoverReport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	limit := c.QueryInt("limit", 0)

	report, err := h.service.Audit(c.Context(), limit)
	if err != nil {
		l.Error("Cover audit failed", zap.Error(err))
		return c.Status(zotero.HTTPStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Cover audit completed",
		zap.Int("total", report.Total),
		zap.Int("covered", report.Covered),
		zap.Int("missing", report.Missing))
	return c.JSON(report)
}
