package movement

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

// MovementService registra entradas y salidas de stock: valida, actualiza el
// catálogo y agrega la fila al libro correspondiente más la fila de auditoría.
//
// Orden de efectos: escritura del catálogo antes del libro. Una caída entre
// ambos pasos deja el catálogo actualizado sin fila en el libro; es el único
// punto de inconsistencia posible y queda asumido.
type MovementService struct {
	// mu serializa cada movimiento completo. Dos salidas concurrentes sobre el
	// mismo artículo podrían pasar ambas la validación de disponibilidad antes
	// de escribir; el mutex elimina esa pérdida de actualización.
	mu      *sync.Mutex
	items   repository.ItemRepository
	exits   repository.ExitLedgerRepository
	entries repository.EntryLedgerRepository
	audit   repository.AuditLogRepository
}

// NewMovementService construye el servicio. mu debe ser el mutex compartido con catalog.
func NewMovementService(
	mu *sync.Mutex,
	items repository.ItemRepository,
	exits repository.ExitLedgerRepository,
	entries repository.EntryLedgerRepository,
	audit repository.AuditLogRepository,
) *MovementService {
	return &MovementService{mu: mu, items: items, exits: exits, entries: entries, audit: audit}
}

// RegisterExit aplica una salida de stock.
// Si la cantidad supera lo disponible devuelve InsufficientStockError sin mutar nada.
func (s *MovementService) RegisterExit(actor string, in dto.RegisterExitRequest) (*dto.ExitRecordResponse, error) {
	if in.Code == "" || in.Requester == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.items.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Quantity > item.Quantity {
		return nil, &domain.InsufficientStockError{
			Code:      item.Code,
			Requested: in.Quantity,
			Available: item.Quantity,
		}
	}

	// Copia de nombre y categoría previos a la mutación para el libro.
	rec := &entity.ExitRecord{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		ItemCode:  item.Code,
		ItemName:  item.Name,
		Category:  item.Category,
		Quantity:  in.Quantity,
		Requester: in.Requester,
		Note:      in.Note,
	}

	item.Quantity -= in.Quantity
	if err := s.items.Update(item); err != nil {
		return nil, err
	}
	if err := s.exits.Append(rec); err != nil {
		return nil, err
	}
	if err := s.appendAudit(actor, entity.ActionExit, fmt.Sprintf("code=%s quantity=%d requester=%s", rec.ItemCode, rec.Quantity, rec.Requester)); err != nil {
		return nil, err
	}
	return toExitResponse(rec), nil
}

// RegisterEntry aplica una entrada de stock. No hay tope contra MaxLevel: es indicativo.
func (s *MovementService) RegisterEntry(actor string, in dto.RegisterEntryRequest) (*dto.EntryRecordResponse, error) {
	if in.Code == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Kind != entity.EntryKindInvoice && in.Kind != entity.EntryKindManual {
		return nil, domain.ErrInvalidInput
	}
	if in.Kind == entity.EntryKindInvoice && in.Document == "" {
		return nil, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.items.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	rec := &entity.EntryRecord{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		ItemCode:  item.Code,
		ItemName:  item.Name,
		Category:  item.Category,
		Quantity:  in.Quantity,
		Kind:      in.Kind,
		Document:  in.Document,
		Supplier:  in.Supplier,
		Note:      in.Note,
	}

	item.Quantity += in.Quantity
	if err := s.items.Update(item); err != nil {
		return nil, err
	}
	if err := s.entries.Append(rec); err != nil {
		return nil, err
	}
	if err := s.appendAudit(actor, entity.ActionEntry, fmt.Sprintf("code=%s quantity=%d kind=%s", rec.ItemCode, rec.Quantity, rec.Kind)); err != nil {
		return nil, err
	}
	return toEntryResponse(rec), nil
}

func (s *MovementService) appendAudit(actor, action, details string) error {
	return s.audit.Append(&entity.AuditEntry{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Actor:     actor,
		Action:    action,
		Details:   details,
	})
}

func toExitResponse(r *entity.ExitRecord) *dto.ExitRecordResponse {
	return &dto.ExitRecordResponse{
		ID:        r.ID,
		Timestamp: r.Timestamp,
		ItemCode:  r.ItemCode,
		ItemName:  r.ItemName,
		Category:  r.Category,
		Quantity:  r.Quantity,
		Requester: r.Requester,
		Note:      r.Note,
	}
}

func toEntryResponse(r *entity.EntryRecord) *dto.EntryRecordResponse {
	return &dto.EntryRecordResponse{
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
	}
}
