package csvstore

import (
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var (
	_ repository.ExitLedgerRepository  = (*ExitLedgerRepo)(nil)
	_ repository.EntryLedgerRepository = (*EntryLedgerRepo)(nil)
)

// exitRow fila de exits.csv. El timestamp se persiste como texto con el
// formato histórico; name/category son la copia tomada al registrar la salida.
type exitRow struct {
	ID        string `csv:"id"`
	Timestamp string `csv:"timestamp"`
	ItemCode  string `csv:"code"`
	ItemName  string `csv:"name"`
	Category  string `csv:"category"`
	Quantity  int    `csv:"quantity"`
	Requester string `csv:"requester"`
	Note      string `csv:"note"`
}

// entryRow fila de entries.csv.
type entryRow struct {
	ID        string `csv:"id"`
	Timestamp string `csv:"timestamp"`
	ItemCode  string `csv:"code"`
	ItemName  string `csv:"name"`
	Category  string `csv:"category"`
	Quantity  int    `csv:"quantity"`
	Kind      string `csv:"kind"`
	Document  string `csv:"document"`
	Supplier  string `csv:"supplier"`
	Note      string `csv:"note"`
}

// ExitLedgerRepo libro de salidas sobre exits.csv. Solo Append y ListAll:
// las filas existentes jamás se reescriben.
type ExitLedgerRepo struct {
	store *Store
}

// NewExitLedgerRepository construye el adaptador.
func NewExitLedgerRepository(store *Store) *ExitLedgerRepo {
	return &ExitLedgerRepo{store: store}
}

// Append agrega la fila al final del libro.
func (r *ExitLedgerRepo) Append(rec *entity.ExitRecord) error {
	return mutateTable(r.store, exitsFile, func(rows []*exitRow) ([]*exitRow, error) {
		return append(rows, &exitRow{
			ID:        rec.ID,
			Timestamp: formatTime(rec.Timestamp),
			ItemCode:  rec.ItemCode,
			ItemName:  rec.ItemName,
			Category:  rec.Category,
			Quantity:  rec.Quantity,
			Requester: rec.Requester,
			Note:      rec.Note,
		}), nil
	})
}

// ListAll devuelve el libro completo en orden de inserción.
func (r *ExitLedgerRepo) ListAll() ([]*entity.ExitRecord, error) {
	rows, err := loadTable[exitRow](r.store, exitsFile)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.ExitRecord, 0, len(rows))
	for _, row := range rows {
		ts, err := parseTime(row.Timestamp)
		if err != nil {
			return nil, err
		}
		out = append(out, &entity.ExitRecord{
			ID:        row.ID,
			Timestamp: ts,
			ItemCode:  row.ItemCode,
			ItemName:  row.ItemName,
			Category:  row.Category,
			Quantity:  row.Quantity,
			Requester: row.Requester,
			Note:      row.Note,
		})
	}
	return out, nil
}

// EntryLedgerRepo libro de entradas sobre entries.csv.
type EntryLedgerRepo struct {
	store *Store
}

// NewEntryLedgerRepository construye el adaptador.
func NewEntryLedgerRepository(store *Store) *EntryLedgerRepo {
	return &EntryLedgerRepo{store: store}
}

// Append agrega la fila al final del libro.
func (r *EntryLedgerRepo) Append(rec *entity.EntryRecord) error {
	return mutateTable(r.store, entriesFile, func(rows []*entryRow) ([]*entryRow, error) {
		return append(rows, &entryRow{
			ID:        rec.ID,
			Timestamp: formatTime(rec.Timestamp),
			ItemCode:  rec.ItemCode,
			ItemName:  rec.ItemName,
			Category:  rec.Category,
			Quantity:  rec.Quantity,
			Kind:      rec.Kind,
			Document:  rec.Document,
			Supplier:  rec.Supplier,
			Note:      rec.Note,
		}), nil
	})
}

// ListAll devuelve el libro completo en orden de inserción.
func (r *EntryLedgerRepo) ListAll() ([]*entity.EntryRecord, error) {
	rows, err := loadTable[entryRow](r.store, entriesFile)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.EntryRecord, 0, len(rows))
	for _, row := range rows {
		ts, err := parseTime(row.Timestamp)
		if err != nil {
			return nil, err
		}
		out = append(out, &entity.EntryRecord{
			ID:        row.ID,
			Timestamp: ts,
			ItemCode:  row.ItemCode,
			ItemName:  row.ItemName,
			Category:  row.Category,
			Quantity:  row.Quantity,
			Kind:      row.Kind,
			Document:  row.Document,
			Supplier:  row.Supplier,
			Note:      row.Note,
		})
	}
	return out, nil
}
