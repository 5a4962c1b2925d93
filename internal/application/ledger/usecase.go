package ledger

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// DateLayout formato de fechas de los filtros de reportes.
const DateLayout = "2006-01-02"

// ReportUseCase consultas de solo lectura sobre los libros de movimientos.
// El filtrado es puro: no muta nada y conserva el orden de inserción del libro.
type ReportUseCase struct {
	exits   repository.ExitLedgerRepository
	entries repository.EntryLedgerRepository
	pdf     ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso. pdf puede ser nil si no se sirven reportes PDF.
func NewReportUseCase(exits repository.ExitLedgerRepository, entries repository.EntryLedgerRepository, pdf ReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{exits: exits, entries: entries, pdf: pdf}
}

// Exits devuelve las salidas cuya fecha cae dentro de [from, to], ambos inclusive.
// Un límite en cero deja ese extremo abierto.
func (uc *ReportUseCase) Exits(from, to time.Time) (*dto.ExitReportResponse, error) {
	records, err := uc.filterExits(from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExitRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.ExitRecordResponse{
			ID:        r.ID,
			Timestamp: r.Timestamp,
			ItemCode:  r.ItemCode,
			ItemName:  r.ItemName,
			Category:  r.Category,
			Quantity:  r.Quantity,
			Requester: r.Requester,
			Note:      r.Note,
		})
	}
	return &dto.ExitReportResponse{
		From:    formatBound(from),
		To:      formatBound(to),
		Records: out,
		Total:   len(out),
	}, nil
}

// Entries devuelve las entradas cuya fecha cae dentro de [from, to], ambos inclusive.
func (uc *ReportUseCase) Entries(from, to time.Time) (*dto.EntryReportResponse, error) {
	records, err := uc.filterEntries(from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EntryRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.EntryRecordResponse{
			ID:        r.ID,
			Timestamp: r.Timestamp,
			ItemCode:  r.ItemCode,
			ItemName:  r.ItemName,
			Category:  r.Category,
			Quantity:  r.Quantity,
			Kind:      r.Kind,
			Document:  r.Document,
			Supplier:  r.Supplier,
			Note:      r.Note,
		})
	}
	return &dto.EntryReportResponse{
		From:    formatBound(from),
		To:      formatBound(to),
		Records: out,
		Total:   len(out),
	}, nil
}

// ExitsPDF genera el reporte de salidas del rango como PDF.
func (uc *ReportUseCase) ExitsPDF(ctx context.Context, from, to time.Time) ([]byte, error) {
	records, err := uc.filterExits(from, to)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateExitReport(ctx, records, from, to)
}

// EntriesPDF genera el reporte de entradas del rango como PDF.
func (uc *ReportUseCase) EntriesPDF(ctx context.Context, from, to time.Time) ([]byte, error) {
	records, err := uc.filterEntries(from, to)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateEntryReport(ctx, records, from, to)
}

func (uc *ReportUseCase) filterExits(from, to time.Time) ([]*entity.ExitRecord, error) {
	all, err := uc.exits.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]*entity.ExitRecord, 0, len(all))
	for _, r := range all {
		if dateInRange(r.Timestamp, from, to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (uc *ReportUseCase) filterEntries(from, to time.Time) ([]*entity.EntryRecord, error) {
	all, err := uc.entries.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]*entity.EntryRecord, 0, len(all))
	for _, r := range all {
		if dateInRange(r.Timestamp, from, to) {
			out = append(out, r)
		}
	}
	return out, nil
}

// dateInRange compara por fecha calendario, no por instante: un registro de las
// 23:59 del día "to" sigue dentro del rango.
func dateInRange(ts, from, to time.Time) bool {
	day := truncateToDay(ts)
	if !from.IsZero() && day.Before(truncateToDay(from)) {
		return false
	}
	if !to.IsZero() && day.After(truncateToDay(to)) {
		return false
	}
	return true
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func formatBound(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
