package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/ledger"
)

// ReportHandler maneja las consultas de los libros de movimientos (protegido).
type ReportHandler struct {
	uc *ledger.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *ledger.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Exits devuelve el libro de salidas filtrado por ?from=YYYY-MM-DD&to=YYYY-MM-DD (inclusivo).
func (h *ReportHandler) Exits(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Exits(from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Entries devuelve el libro de entradas filtrado por rango de fechas (inclusivo).
func (h *ReportHandler) Entries(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Entries(from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExitsPDF devuelve el reporte de salidas en PDF.
func (h *ReportHandler) ExitsPDF(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	pdfBytes, err := h.uc.ExitsPDF(c.Context(), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="salidas.pdf"`)
	return c.Send(pdfBytes)
}

// EntriesPDF devuelve el reporte de entradas en PDF.
func (h *ReportHandler) EntriesPDF(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	pdfBytes, err := h.uc.EntriesPDF(c.Context(), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="entradas.pdf"`)
	return c.Send(pdfBytes)
}

// parseRange lee from/to. Ausentes = extremo abierto.
func parseRange(c *fiber.Ctx) (from, to time.Time, err error) {
	if v := c.Query("from"); v != "" {
		from, err = time.Parse(ledger.DateLayout, v)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("from inválido: se espera YYYY-MM-DD")
		}
	}
	if v := c.Query("to"); v != "" {
		to, err = time.Parse(ledger.DateLayout, v)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("to inválido: se espera YYYY-MM-DD")
		}
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("rango inválido: to es anterior a from")
	}
	return from, to, nil
}
