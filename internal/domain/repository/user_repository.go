package repository

import "github.com/tu-usuario/almacen-api/internal/domain/entity"

// UserRepository puerto de lectura de la lista de credenciales permitidas.
// FindByUsername devuelve (nil, nil) si el usuario no existe.
type UserRepository interface {
	FindByUsername(username string) (*entity.User, error)
}
