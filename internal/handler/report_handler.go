package handler

import (
	"bytes"
	"time"

	"ringkas-aset/internal/middleware"
	"ringkas-aset/internal/service"
	"ringkas-aset/pkg/export"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// GetInventoryReport feeds the dashboard charts and report page.
// GET /api/v1/reports/summary?start_date=&end_date=
func (h *ReportHandler) GetInventoryReport(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	rep, err := h.service.Inventory(user, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(rep)
}

// ExportPDF streams the report document as a download.
// GET /api/v1/reports/export.pdf?start_date=&end_date=
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var buf bytes.Buffer
	if err := h.service.ExportPDF(user, c.Query("start_date"), c.Query("end_date"), &buf); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Gagal membuat laporan PDF"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.Filename(time.Now())+`"`)
	return c.Send(buf.Bytes())
}
