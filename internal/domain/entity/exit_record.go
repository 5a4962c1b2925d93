package entity

import "time"

// ExitRecord registro inmutable de una salida de stock (libro de salidas, append-only).
// ItemName y Category son una copia del artículo al momento de la salida: el historial
// sigue siendo legible aunque el artículo se renombre o se elimine del catálogo.
type ExitRecord struct {
	ID        string
	Timestamp time.Time
	ItemCode  string
	ItemName  string
	Category  string
	Quantity  int // > 0
	Requester string
	Note      string
}
