package games

import (
	"game-catalog/core/archive"
	"game-catalog/core/database"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the games feature.
func NewFeature(opener database.Opener, links archive.Config, logger *zap.Logger) *Feature {
	svc := NewService(opener, links, logger)
	h := NewHandler(NewAdapter(svc, logger), logger)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "games"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the catalog reader for non-HTTP callers.
func (f *Feature) Service() *Service {
	return f.service
}
