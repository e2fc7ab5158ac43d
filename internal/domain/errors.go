package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrLoginAlreadyUsed  = errors.New("el login ya está registrado")
	ErrValidation        = errors.New("regla de negocio violada")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrIntegrityConflict = errors.New("conflicto de integridad referencial")
)

// ValidationError es una violación de regla de negocio con mensaje para el cliente.
// errors.Is(err, ErrValidation) retorna true para cualquier ValidationError.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// Unwrap permite errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error { return ErrValidation }

// Validation construye un ValidationError con el mensaje dado.
func Validation(reason string) error {
	return &ValidationError{Reason: reason}
}

// ErrInsufficientStock salida que dejaría el stock negativo. Es un
// ValidationError (errors.Is ErrValidation) pero se mapea a 409 en HTTP.
var ErrInsufficientStock = Validation("Insufficient stock for this operation")
