package handler

import (
	"errors"
	"fmt"
	"time"

	"go-pricing-gp/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DatasetHandler struct {
	service service.DatasetService
}

func NewDatasetHandler(s service.DatasetService) *DatasetHandler {
	return &DatasetHandler{service: s}
}

// ImportDataset replaces the in-memory state from an uploaded JSON dataset.
// Parse failures and shape failures get distinct messages; neither touches
// state.
func (h *DatasetHandler) ImportDataset(c *fiber.Ctx) error {
	summary, err := h.service.Import(c.Body())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMalformedJSON):
			return c.Status(400).JSON(fiber.Map{"error": "Error reading or parsing the file"})
		case errors.Is(err, service.ErrInvalidFormat):
			return c.Status(400).JSON(fiber.Map{
				"error": "Invalid data file format. The file must contain at least suppliers and supplierProducts.",
			})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to import dataset"})
		}
	}

	return c.JSON(fiber.Map{"message": "Data imported successfully", "summary": summary})
}

// ExportDataset serves the current dataset as a JSON download.
func (h *DatasetHandler) ExportDataset(c *fiber.Ctx) error {
	filename := fmt.Sprintf("gbsa_pricing_data_%s.json", time.Now().Format("2006-01-02"))

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.JSON(h.service.Export())
}
