package export

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature bundles the export service and handler for the feature loader.
type Feature struct {
	handler *Handler
}

// NewFeature creates the export feature around an existing service.
func NewFeature(service *Service, log *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(service, log)}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "export"
}

// Load registers the export routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
