package dto

import "time"

// ExitReportResponse libro de salidas filtrado por rango de fechas (inclusivo).
type ExitReportResponse struct {
	From    string               `json:"from,omitempty"`
	To      string               `json:"to,omitempty"`
	Records []ExitRecordResponse `json:"records"`
	Total   int                  `json:"total"`
}

// EntryReportResponse libro de entradas filtrado por rango de fechas (inclusivo).
type EntryReportResponse struct {
	From    string                `json:"from,omitempty"`
	To      string                `json:"to,omitempty"`
	Records []EntryRecordResponse `json:"records"`
	Total   int                   `json:"total"`
}

// AuditEntryResponse una fila de la bitácora de auditoría.
type AuditEntryResponse struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
}
