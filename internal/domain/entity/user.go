package entity

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// User un usuario de la lista de credenciales permitidas.
type User struct {
	Username     string
	PasswordHash string // bcrypt hash, nunca en claro
	Name         string
	Role         string // admin, operador
}
