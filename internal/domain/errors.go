package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("artículo no encontrado")
	ErrDuplicateCode     = errors.New("código ya registrado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrUnauthorized      = errors.New("credenciales inválidas")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInvalidInput      = errors.New("entrada inválida")
)

// InsufficientStockError rechaza una salida mayor al stock disponible.
// Lleva la cantidad disponible para que la capa de presentación la informe.
// errors.Is(err, ErrInsufficientStock) sigue funcionando vía Unwrap.
type InsufficientStockError struct {
	Code      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s: disponible %d, solicitado %d", e.Code, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
