package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	"github.com/tu-usuario/almacen-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para la emisión de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase acceso con la lista de credenciales permitidas. No hay estado de
// sesión en el proceso: el token firmado es la identidad de cada request.
type AuthUseCase struct {
	users  repository.UserRepository
	audit  repository.AuditLogRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, audit repository.AuditLogRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, audit: audit, jwtCfg: jwtCfg}
}

// Login verifica username/password y emite el token de sesión.
// Usuario inexistente y password incorrecta devuelven el mismo ErrUnauthorized:
// la respuesta no revela cuál de los dos campos falló. Cada intento fallido
// queda en la bitácora como login_failed con el username intentado.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.users.FindByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		// El fallo al escribir la bitácora no debe ocultar el error de credenciales.
		_ = uc.appendAudit(in.Username, entity.ActionLoginFailed, "")
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	if err := uc.appendAudit(user.Username, entity.ActionLogin, ""); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			Username: user.Username,
			Name:     user.Name,
			Role:     user.Role,
		},
	}, nil
}

// Logout registra el cierre de sesión en la bitácora. El token sigue siendo
// válido hasta expirar; el cliente simplemente lo descarta.
func (uc *AuthUseCase) Logout(username string) error {
	return uc.appendAudit(username, entity.ActionLogout, "")
}

func (uc *AuthUseCase) appendAudit(actor, action, details string) error {
	return uc.audit.Append(&entity.AuditEntry{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Actor:     actor,
		Action:    action,
		Details:   details,
	})
}
