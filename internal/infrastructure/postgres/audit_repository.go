package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo bitácora de auditoría sobre la tabla audit_log.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el adaptador.
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Append inserta la fila al final de la bitácora.
func (r *AuditLogRepo) Append(rec *entity.AuditEntry) error {
	query := `
		INSERT INTO audit_log (id, ts, actor, action, details)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.Timestamp, rec.Actor, rec.Action, rec.Details,
	)
	if err != nil {
		return fmt.Errorf("insert audit: %w", err)
	}
	return nil
}

// ListAll devuelve la bitácora completa en orden de inserción.
func (r *AuditLogRepo) ListAll() ([]*entity.AuditEntry, error) {
	query := `
		SELECT id, ts, actor, action, details
		FROM audit_log ORDER BY seq`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list audit: %w", err)
	}
	defer rows.Close()

	var out []*entity.AuditEntry
	for rows.Next() {
		var rec entity.AuditEntry
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.Actor, &rec.Action, &rec.Details); err != nil {
			return nil, fmt.Errorf("scan audit: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}
