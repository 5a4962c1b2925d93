package entity

import "time"

// Acciones registradas en la bitácora de auditoría.
const (
	ActionEntry       = "entry"
	ActionExit        = "exit"
	ActionLogin       = "login"
	ActionLoginFailed = "login_failed"
	ActionLogout      = "logout"
	ActionCreateItem  = "create_item"
	ActionEditItem    = "edit_item"
	ActionDeleteItem  = "delete_item"
)

// AuditEntry una fila de la bitácora de auditoría. Append-only, nunca se modifica.
type AuditEntry struct {
	ID        string
	Timestamp time.Time
	Actor     string // username; en login_failed, el username intentado
	Action    string
	Details   string
}
