package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// AuditLogRepository puerto de la bitácora de auditoría (append-only).
type AuditLogRepository interface {
	Append(rec *entity.AuditEntry) error
	// ListAll devuelve todas las filas en orden de inserción.
	ListAll() ([]*entity.AuditEntry, error)
}
