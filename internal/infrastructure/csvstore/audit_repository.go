package csvstore

import (
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// auditRow fila de audit.csv.
type auditRow struct {
	ID        string `csv:"id"`
	Timestamp string `csv:"timestamp"`
	Actor     string `csv:"actor"`
	Action    string `csv:"action"`
	Details   string `csv:"details"`
}

// AuditLogRepo bitácora de auditoría sobre audit.csv.
type AuditLogRepo struct {
	store *Store
}

// NewAuditLogRepository construye el adaptador.
func NewAuditLogRepository(store *Store) *AuditLogRepo {
	return &AuditLogRepo{store: store}
}

// Append agrega la fila al final de la bitácora.
func (r *AuditLogRepo) Append(rec *entity.AuditEntry) error {
	return mutateTable(r.store, auditFile, func(rows []*auditRow) ([]*auditRow, error) {
		return append(rows, &auditRow{
			ID:        rec.ID,
			Timestamp: formatTime(rec.Timestamp),
			Actor:     rec.Actor,
			Action:    rec.Action,
			Details:   rec.Details,
		}), nil
	})
}

// ListAll devuelve la bitácora completa en orden de inserción.
func (r *AuditLogRepo) ListAll() ([]*entity.AuditEntry, error) {
	rows, err := loadTable[auditRow](r.store, auditFile)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.AuditEntry, 0, len(rows))
	for _, row := range rows {
		ts, err := parseTime(row.Timestamp)
		if err != nil {
			return nil, err
		}
		out = append(out, &entity.AuditEntry{
			ID:        row.ID,
			Timestamp: ts,
			Actor:     row.Actor,
			Action:    row.Action,
			Details:   row.Details,
		})
	}
	return out, nil
}
