package catalog

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	"github.com/tu-usuario/almacen-api/pkg/normalize"
)

// CatalogUseCase CRUD del catálogo de artículos. Quantity normalmente se modifica
// vía el servicio de movimientos; la edición directa queda para correcciones de admin.
type CatalogUseCase struct {
	// mu serializa las escrituras lectura-modificación-escritura sobre el almacén.
	// Es el mismo mutex del servicio de movimientos: el backend CSV reescribe la
	// tabla completa, así que un lock por artículo no protegería nada.
	mu    *sync.Mutex
	items repository.ItemRepository
	audit repository.AuditLogRepository
}

// NewCatalogUseCase construye el caso de uso. mu debe ser el mutex compartido con movement.
func NewCatalogUseCase(mu *sync.Mutex, items repository.ItemRepository, audit repository.AuditLogRepository) *CatalogUseCase {
	return &CatalogUseCase{mu: mu, items: items, audit: audit}
}

// Register da de alta un artículo. Devuelve ErrDuplicateCode si el código ya existe.
func (uc *CatalogUseCase) Register(actor string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.MinLevel < 0 || in.MaxLevel < 0 {
		return nil, domain.ErrInvalidInput
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	existing, err := uc.items.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateCode
	}
	item := &entity.Item{
		Code:     in.Code,
		Name:     in.Name,
		Category: in.Category,
		Quantity: in.Quantity,
		MinLevel: in.MinLevel,
		MaxLevel: in.MaxLevel,
	}
	if err := uc.items.Create(item); err != nil {
		return nil, err
	}
	if err := uc.appendAudit(actor, entity.ActionCreateItem, fmt.Sprintf("code=%s name=%s quantity=%d", item.Code, item.Name, item.Quantity)); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Find obtiene un artículo por código. Devuelve ErrNotFound si no existe.
func (uc *CatalogUseCase) Find(code string) (*dto.ItemResponse, error) {
	item, err := uc.items.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// Update edita los campos mutables de un artículo. Campos nil no se tocan.
// Quantity negativa se rechaza: el invariante quantity >= 0 también aplica a ediciones.
func (uc *CatalogUseCase) Update(actor, code string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if in.Quantity != nil && *in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if (in.MinLevel != nil && *in.MinLevel < 0) || (in.MaxLevel != nil && *in.MaxLevel < 0) {
		return nil, domain.ErrInvalidInput
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	item, err := uc.items.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.MinLevel != nil {
		item.MinLevel = *in.MinLevel
	}
	if in.MaxLevel != nil {
		item.MaxLevel = *in.MaxLevel
	}
	if err := uc.items.Update(item); err != nil {
		return nil, err
	}
	if err := uc.appendAudit(actor, entity.ActionEditItem, "code="+item.Code); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Remove elimina un artículo del catálogo. No toca los libros de movimientos:
// el historial conserva su copia de nombre y categoría.
func (uc *CatalogUseCase) Remove(actor, code string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.items.Delete(code); err != nil {
		return err
	}
	return uc.appendAudit(actor, entity.ActionDeleteItem, "code="+code)
}

// List devuelve el catálogo anotado con la clasificación de stock.
// query filtra por nombre o categoría sin distinguir mayúsculas ni acentos;
// status filtra por la clasificación derivada (ok, low_stock, out_of_stock).
func (uc *CatalogUseCase) List(query, status string) (*dto.ItemListResponse, error) {
	items, err := uc.items.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		if query != "" && !normalize.Contains(item.Name, query) && !normalize.Contains(item.Category, query) {
			continue
		}
		resp := toItemResponse(item)
		if status != "" && resp.Status != status {
			continue
		}
		out = append(out, *resp)
	}
	return &dto.ItemListResponse{Items: out, Total: len(out)}, nil
}

func (uc *CatalogUseCase) appendAudit(actor, action, details string) error {
	return uc.audit.Append(&entity.AuditEntry{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Actor:     actor,
		Action:    action,
		Details:   details,
	})
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	if i == nil {
		return nil
	}
	return &dto.ItemResponse{
		Code:     i.Code,
		Name:     i.Name,
		Category: i.Category,
		Quantity: i.Quantity,
		MinLevel: i.MinLevel,
		MaxLevel: i.MaxLevel,
		Status:   i.StockStatus(),
	}
}
