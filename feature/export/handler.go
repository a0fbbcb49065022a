package export

import (
	"sheetsync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for dump operations.
type Handler struct {
	service *Service
	log     *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// RegisterRoutes registers the export routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/export")
	group.Post("/", h.HandleExport)
	group.Get("/dumps", h.HandleListDumps)
	group.Delete("/dumps", h.HandleRemoveDump)
}

// exportRequest is the POST /export request body.
type exportRequest struct {
	// Workbook is the workbook path to export.
	Workbook string `json:"workbook"`
	// Object is the storage object name for the archived dump.
	Object string `json:"object"`
}

// HandleExport dumps a workbook and archives it in object storage.
// @Summary Export workbook
// @Description Serialize a workbook's values and formulas and archive the dump in object storage.
// @Tags export
// @Accept json
// @Produce json
// @Param request body exportRequest true "Export parameters"
// @Success 200 {object} map[string]any "Archive summary"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.log, c)

	var req exportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.Workbook == "" || req.Object == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "workbook and object are required",
		})
	}

	dump, err := h.service.ExportWorkbook(req.Workbook)
	if err != nil {
		l.Error("Export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := h.service.Upload(c.Context(), dump, req.Object); err != nil {
		l.Error("Dump upload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"object": req.Object,
		"sheets": len(dump.Sheets),
		"cells":  dump.CellCount(),
	})
}

// HandleListDumps lists archived dumps.
// @Summary List archived dumps
// @Description List archived workbook dumps, optionally filtered by object name prefix.
// @Tags export
// @Produce json
// @Param prefix query string false "Object name prefix"
// @Success 200 {array} DumpInfo "Archived dumps"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /export/dumps [get]
func (h *Handler) HandleListDumps(c *fiber.Ctx) error {
	l := logger.WithRayID(h.log, c)

	dumps, err := h.service.ListDumps(c.Context(), c.Query("prefix"))
	if err != nil {
		l.Error("Dump listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if dumps == nil {
		dumps = []DumpInfo{}
	}
	return c.JSON(dumps)
}

// HandleRemoveDump deletes one archived dump.
// @Summary Remove archived dump
// @Description Delete one archived workbook dump from object storage.
// @Tags export
// @Produce json
// @Param object query string true "Object name"
// @Success 200 {object} map[string]string "Removed object"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /export/dumps [delete]
func (h *Handler) HandleRemoveDump(c *fiber.Ctx) error {
	l := logger.WithRayID(h.log, c)

	object := c.Query("object")
	if object == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "object is required",
		})
	}

	if err := h.service.RemoveDump(c.Context(), object); err != nil {
		l.Error("Dump removal failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"object": object})
}
