package handler

import (
	"fmt"
	"time"

	"go-pricing-gp/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AnalysisHandler struct {
	service service.AnalysisService
}

func NewAnalysisHandler(s service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: s}
}

// GetAnalysis returns the GP analysis rows.
// Query params: vatIncluded (default false, affects display price only)
func (h *AnalysisHandler) GetAnalysis(c *fiber.Ctx) error {
	rows := h.service.Analysis(c.QueryBool("vatIncluded"))
	return c.JSON(fiber.Map{
		"vatIncluded": c.QueryBool("vatIncluded"),
		"rows":        rows,
	})
}

// ExportAnalysis serves the analysis as a CSV download.
func (h *AnalysisHandler) ExportAnalysis(c *fiber.Ctx) error {
	filename := fmt.Sprintf("gp_analysis_%s.csv", time.Now().Format("2006-01-02"))

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(h.service.ExportCSV())
}
