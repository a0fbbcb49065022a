package sync

import (
	"errors"

	"sheetsync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for sync operations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Post("/", h.HandleSync)
	group.Get("/history", h.HandleHistory)
}

// syncRequest is the POST /sync request body.
type syncRequest struct {
	// Workbook overrides the configured default workbook path.
	Workbook string `json:"workbook"`
	// Origin is the sheet treated as authoritative for this run.
	Origin string `json:"origin"`
	// DryRun computes the report without writing anything.
	DryRun bool `json:"dry_run"`
}

// HandleSync runs one reconciliation pass.
// @Summary Sync checkbox column
// @Description Reconcile every configured target sheet's checkbox column against the origin sheet.
// @Tags sync
// @Accept json
// @Produce json
// @Param request body syncRequest true "Sync parameters"
// @Success 200 {object} Report "Sync report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 409 {object} map[string]string "Sync already in progress"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req syncRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.Origin == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "origin sheet is required",
		})
	}

	path := req.Workbook
	if path == "" {
		path = h.service.cfg.Workbook
	}

	report, err := h.service.SyncWorkbook(c.Context(), path, req.Origin, Options{DryRun: req.DryRun})
	if err != nil {
		if errors.Is(err, ErrSyncInProgress) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Sync failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}

// HandleHistory returns recent sync runs.
// @Summary Sync history
// @Description List the most recent sync runs, newest first.
// @Tags sync
// @Produce json
// @Param limit query int false "Maximum number of runs (default 20)"
// @Success 200 {array} history.Run "Recent runs"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/history [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if h.service.history == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "history is disabled",
		})
	}

	limit := c.QueryInt("limit", 20)
	runs, err := h.service.history.Recent(c.Context(), limit)
	if err != nil {
		l.Error("History lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(runs)
}
