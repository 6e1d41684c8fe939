package integrity

import (
	"game-catalog/core/archive"
	"game-catalog/core/database"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	enabled bool
}

// NewFeature creates the integrity feature. Its routes are only mounted when enabled.
func NewFeature(opener database.Opener, cfg archive.Config, logger *zap.Logger, enabled bool) *Feature {
	return &Feature{
		service: NewService(opener, cfg, logger),
		enabled: enabled,
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "integrity"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	NewHandler(f.service).RegisterRoutes(app)
	return nil
}

// Service exposes the integrity service for non-HTTP callers.
func (f *Feature) Service() *Service {
	return f.service
}
