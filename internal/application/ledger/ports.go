package ledger

import (
	"context"
	"time"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// ReportPDFGenerator genera la representación PDF de un libro filtrado.
// Lo implementa infrastructure/pdf; la interfaz evita acoplar el caso de uso a Maroto.
type ReportPDFGenerator interface {
	GenerateExitReport(ctx context.Context, records []*entity.ExitRecord, from, to time.Time) ([]byte, error)
	GenerateEntryReport(ctx context.Context, records []*entity.EntryRecord, from, to time.Time) ([]byte, error)
}
