package sync

import "github.com/gofiber/fiber/v2"

// Feature bundles the sync service and handler for the feature loader.
type Feature struct {
	handler *Handler
}

// NewFeature creates the sync feature around an existing service.
func NewFeature(service *Service) *Feature {
	return &Feature{handler: NewHandler(service)}
}

// Name returns the feature name.
func (f *Feature) Name() string {
	return "sync"
}

// Load registers the sync routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
