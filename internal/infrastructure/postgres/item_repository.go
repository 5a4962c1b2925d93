package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo catálogo de artículos sobre la tabla items (code es la PK).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// GetByCode devuelve el artículo o (nil, nil) si el código no existe.
func (r *ItemRepo) GetByCode(code string) (*entity.Item, error) {
	query := `
		SELECT code, name, category, quantity, min_level, max_level
		FROM items WHERE code = $1`
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, code).Scan(
		&it.Code, &it.Name, &it.Category, &it.Quantity, &it.MinLevel, &it.MaxLevel,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// Create inserta el artículo. Devuelve ErrDuplicateCode si el código ya existe.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (code, name, category, quantity, min_level, max_level)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		item.Code, item.Name, item.Category, item.Quantity, item.MinLevel, item.MaxLevel,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// Update reescribe los campos mutables. Devuelve ErrNotFound si el código no existe.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items
		SET name = $2, category = $3, quantity = $4, min_level = $5, max_level = $6
		WHERE code = $1`
	tag, err := r.q.Exec(context.Background(), query,
		item.Code, item.Name, item.Category, item.Quantity, item.MinLevel, item.MaxLevel,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el artículo. Devuelve ErrNotFound si el código no existe.
func (r *ItemRepo) Delete(code string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListAll devuelve el catálogo completo en orden de alta.
func (r *ItemRepo) ListAll() ([]*entity.Item, error) {
	query := `
		SELECT code, name, category, quantity, min_level, max_level
		FROM items ORDER BY seq`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.Code, &it.Name, &it.Category, &it.Quantity, &it.MinLevel, &it.MaxLevel); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}
