package dto

import "time"

// RegisterExitRequest entrada para registrar una salida de stock.
type RegisterExitRequest struct {
	Code      string `json:"code" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Requester string `json:"requester" validate:"required"`
	Note      string `json:"note"`
}

// RegisterEntryRequest entrada para registrar una entrada de stock.
// Document es obligatorio cuando Kind es "invoice".
type RegisterEntryRequest struct {
	Code     string `json:"code" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
	Kind     string `json:"kind" validate:"required,oneof=invoice manual"`
	Document string `json:"document"`
	Supplier string `json:"supplier"`
	Note     string `json:"note"`
}

// ExitRecordResponse una fila del libro de salidas.
type ExitRecordResponse struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	ItemCode  string    `json:"item_code"`
	ItemName  string    `json:"item_name"`
	Category  string    `json:"category"`
	Quantity  int       `json:"quantity"`
	Requester string    `json:"requester"`
	Note      string    `json:"note,omitempty"`
}

// EntryRecordResponse una fila del libro de entradas.
type EntryRecordResponse struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	ItemCode  string    `json:"item_code"`
	ItemName  string    `json:"item_name"`
	Category  string    `json:"category"`
	Quantity  int       `json:"quantity"`
	Kind      string    `json:"kind"`
	Document  string    `json:"document,omitempty"`
	Supplier  string    `json:"supplier,omitempty"`
	Note      string    `json:"note,omitempty"`
}
