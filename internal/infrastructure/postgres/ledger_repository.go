package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var (
	_ repository.ExitLedgerRepository  = (*ExitLedgerRepo)(nil)
	_ repository.EntryLedgerRepository = (*EntryLedgerRepo)(nil)
)

// ExitLedgerRepo libro de salidas sobre la tabla exits. Solo INSERT y SELECT;
// la columna seq (bigserial) conserva el orden de inserción.
type ExitLedgerRepo struct {
	q Querier
}

// NewExitLedgerRepository construye el adaptador.
func NewExitLedgerRepository(q Querier) *ExitLedgerRepo {
	return &ExitLedgerRepo{q: q}
}

// Append inserta la fila al final del libro.
func (r *ExitLedgerRepo) Append(rec *entity.ExitRecord) error {
	query := `
		INSERT INTO exits (id, ts, code, name, category, quantity, requester, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.Timestamp, rec.ItemCode, rec.ItemName, rec.Category,
		rec.Quantity, rec.Requester, rec.Note,
	)
	if err != nil {
		return fmt.Errorf("insert exit: %w", err)
	}
	return nil
}

// ListAll devuelve el libro completo en orden de inserción.
func (r *ExitLedgerRepo) ListAll() ([]*entity.ExitRecord, error) {
	query := `
		SELECT id, ts, code, name, category, quantity, requester, note
		FROM exits ORDER BY seq`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list exits: %w", err)
	}
	defer rows.Close()

	var out []*entity.ExitRecord
	for rows.Next() {
		var rec entity.ExitRecord
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.ItemCode, &rec.ItemName,
			&rec.Category, &rec.Quantity, &rec.Requester, &rec.Note); err != nil {
			return nil, fmt.Errorf("scan exit: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

// EntryLedgerRepo libro de entradas sobre la tabla entries.
type EntryLedgerRepo struct {
	q Querier
}

// NewEntryLedgerRepository construye el adaptador.
func NewEntryLedgerRepository(q Querier) *EntryLedgerRepo {
	return &EntryLedgerRepo{q: q}
}

// Append inserta la fila al final del libro.
func (r *EntryLedgerRepo) Append(rec *entity.EntryRecord) error {
	query := `
		INSERT INTO entries (id, ts, code, name, category, quantity, kind, document, supplier, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.Timestamp, rec.ItemCode, rec.ItemName, rec.Category,
		rec.Quantity, rec.Kind, rec.Document, rec.Supplier, rec.Note,
	)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return nil
}

// ListAll devuelve el libro completo en orden de inserción.
func (r *EntryLedgerRepo) ListAll() ([]*entity.EntryRecord, error) {
	query := `
		SELECT id, ts, code, name, category, quantity, kind, document, supplier, note
		FROM entries ORDER BY seq`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var out []*entity.EntryRecord
	for rows.Next() {
		var rec entity.EntryRecord
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.ItemCode, &rec.ItemName, &rec.Category,
			&rec.Quantity, &rec.Kind, &rec.Document, &rec.Supplier, &rec.Note); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}
