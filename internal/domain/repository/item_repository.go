package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// ItemRepository puerto de persistencia del catálogo de artículos.
// GetByCode devuelve (nil, nil) si el código no existe.
type ItemRepository interface {
	GetByCode(code string) (*entity.Item, error)
	// Create devuelve domain.ErrDuplicateCode si el código ya existe.
	Create(item *entity.Item) error
	// Update devuelve domain.ErrNotFound si el código no existe.
	Update(item *entity.Item) error
	// Delete devuelve domain.ErrNotFound si el código no existe.
	Delete(code string) error
	ListAll() ([]*entity.Item, error)
}
