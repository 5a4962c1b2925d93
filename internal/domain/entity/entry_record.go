package entity

import "time"

// Tipos de entrada de stock.
const (
	EntryKindInvoice = "invoice" // con documento fiscal obligatorio
	EntryKindManual  = "manual"
)

// EntryRecord registro inmutable de una entrada de stock (libro de entradas, append-only).
// ItemName y Category son una copia del artículo al momento de la entrada.
type EntryRecord struct {
	ID        string
	Timestamp time.Time
	ItemCode  string
	ItemName  string
	Category  string
	Quantity  int    // > 0
	Kind      string // invoice | manual
	Document  string // número de factura; obligatorio cuando Kind es invoice
	Supplier  string
	Note      string
}
