package csvstore

import (
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// itemRow fila de items.csv. Las columnas conservan los nombres históricos.
type itemRow struct {
	Code     string `csv:"code"`
	Name     string `csv:"name"`
	Category string `csv:"category"`
	Quantity int    `csv:"quantity"`
	MinLevel int    `csv:"min_level"`
	MaxLevel int    `csv:"max_level"`
}

// ItemRepo catálogo de artículos sobre items.csv.
type ItemRepo struct {
	store *Store
}

// NewItemRepository construye el adaptador.
func NewItemRepository(store *Store) *ItemRepo {
	return &ItemRepo{store: store}
}

// GetByCode devuelve el artículo o (nil, nil) si el código no existe.
func (r *ItemRepo) GetByCode(code string) (*entity.Item, error) {
	rows, err := loadTable[itemRow](r.store, itemsFile)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.Code == code {
			return itemFromRow(row), nil
		}
	}
	return nil, nil
}

// Create agrega el artículo. Devuelve ErrDuplicateCode si el código ya existe.
func (r *ItemRepo) Create(item *entity.Item) error {
	return mutateTable(r.store, itemsFile, func(rows []*itemRow) ([]*itemRow, error) {
		for _, row := range rows {
			if row.Code == item.Code {
				return nil, domain.ErrDuplicateCode
			}
		}
		return append(rows, itemToRow(item)), nil
	})
}

// Update reemplaza la fila del artículo. Devuelve ErrNotFound si no existe.
func (r *ItemRepo) Update(item *entity.Item) error {
	return mutateTable(r.store, itemsFile, func(rows []*itemRow) ([]*itemRow, error) {
		for i, row := range rows {
			if row.Code == item.Code {
				rows[i] = itemToRow(item)
				return rows, nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

// Delete elimina la fila del artículo. Devuelve ErrNotFound si no existe.
func (r *ItemRepo) Delete(code string) error {
	return mutateTable(r.store, itemsFile, func(rows []*itemRow) ([]*itemRow, error) {
		for i, row := range rows {
			if row.Code == code {
				return append(rows[:i], rows[i+1:]...), nil
			}
		}
		return nil, domain.ErrNotFound
	})
}

// ListAll devuelve el catálogo completo en el orden del archivo.
func (r *ItemRepo) ListAll() ([]*entity.Item, error) {
	rows, err := loadTable[itemRow](r.store, itemsFile)
	if err != nil {
		return nil, err
	}
	items := make([]*entity.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, itemFromRow(row))
	}
	return items, nil
}

func itemToRow(i *entity.Item) *itemRow {
	return &itemRow{
		Code:     i.Code,
		Name:     i.Name,
		Category: i.Category,
		Quantity: i.Quantity,
		MinLevel: i.MinLevel,
		MaxLevel: i.MaxLevel,
	}
}

func itemFromRow(row *itemRow) *entity.Item {
	return &entity.Item{
		Code:     row.Code,
		Name:     row.Name,
		Category: row.Category,
		Quantity: row.Quantity,
		MinLevel: row.MinLevel,
		MaxLevel: row.MaxLevel,
	}
}
