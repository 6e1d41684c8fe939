package games

import (
	"game-catalog/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the request adapter over Fiber.
type Handler struct {
	adapter *Adapter
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(adapter *Adapter, logger *zap.Logger) *Handler {
	return &Handler{adapter: adapter, logger: logger}
}

// RegisterRoutes mounts the handler as a catch-all: path matching is the
// adapter's job, so unknown paths get its plain-text 404 rather than Fiber's.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Use(h.HandleCatalog)
}

// HandleCatalog lists the catalog.
// @Summary List Games
// @Description Lists every game ordered by title, or those whose title or filename contains q. Store failures are returned with status 200 and an "error" key in the body.
// @Tags games
// @Produce json
// @Param q query string false "Case-insensitive search text"
// @Success 200 {object} map[string]interface{} "Catalog or error object"
// @Failure 404 {string} string "Not Found"
// @Router /games.json [get]
func (h *Handler) HandleCatalog(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	resp := h.adapter.Respond(c.Context(), c.Path(), string(c.Request().URI().QueryString()))
	for k, v := range resp.Headers {
		c.Set(k, v)
	}

	l.Debug("Catalog request served",
		zap.String("path", c.Path()),
		zap.Int("status", resp.Status),
		zap.Int("bytes", len(resp.Body)),
	)

	return c.Status(resp.Status).Send(resp.Body)
}
