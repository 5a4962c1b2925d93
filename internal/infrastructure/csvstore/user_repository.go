package csvstore

import (
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// userRow fila de users.csv. El archivo se edita a mano o con herramientas
// externas; la aplicación solo lo lee.
type userRow struct {
	Username     string `csv:"username"`
	PasswordHash string `csv:"password_hash"`
	Name         string `csv:"name"`
	Role         string `csv:"role"`
}

// UserRepo lista de credenciales permitidas sobre users.csv.
type UserRepo struct {
	store *Store
}

// NewUserRepository construye el adaptador.
func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

// FindByUsername devuelve el usuario o (nil, nil) si no existe.
func (r *UserRepo) FindByUsername(username string) (*entity.User, error) {
	rows, err := loadTable[userRow](r.store, usersFile)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if row.Username == username {
			return &entity.User{
				Username:     row.Username,
				PasswordHash: row.PasswordHash,
				Name:         row.Name,
				Role:         row.Role,
			}, nil
		}
	}
	return nil, nil
}
