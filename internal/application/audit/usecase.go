package audit

import (
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// AuditUseCase lectura de la bitácora de auditoría. La escritura ocurre dentro
// de cada caso de uso que registra acciones; aquí solo se consulta.
type AuditUseCase struct {
	audit repository.AuditLogRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(audit repository.AuditLogRepository) *AuditUseCase {
	return &AuditUseCase{audit: audit}
}

// List devuelve la bitácora completa en orden de inserción.
func (uc *AuditUseCase) List() ([]dto.AuditEntryResponse, error) {
	rows, err := uc.audit.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AuditEntryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.AuditEntryResponse{
			ID:        r.ID,
			Timestamp: r.Timestamp,
			Actor:     r.Actor,
			Action:    r.Action,
			Details:   r.Details,
		})
	}
	return out, nil
}
