package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// ExitLedgerRepository puerto del libro de salidas. Solo se agrega y se lee;
// las filas nunca se modifican ni se borran.
type ExitLedgerRepository interface {
	Append(rec *entity.ExitRecord) error
	// ListAll devuelve todas las filas en orden de inserción (cronológico).
	ListAll() ([]*entity.ExitRecord, error)
}

// EntryLedgerRepository puerto del libro de entradas. Mismo contrato append-only.
type EntryLedgerRepository interface {
	Append(rec *entity.EntryRecord) error
	ListAll() ([]*entity.EntryRecord, error)
}
