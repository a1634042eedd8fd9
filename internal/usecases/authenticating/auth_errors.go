package authenticating

import (
	"errors"
	"fmt"

	"github.com/rvaldez-mx/auto-market-api/pkg/apiErrors"
)

// Errores de autenticación de la API
var (
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidToken       = errors.New("token inválido")
	ErrExpiredToken       = errors.New("token expirado")

	ErrMissingRequiredData = errors.New("datos obligatorios ausentes")
)

// AuthError es un error con contexto adicional de autenticación
type AuthError struct {
	Err     error  // Error base
	Code    string // Código de error para la API
	Details string // Detalles adicionales
}

// Error implementa la interfaz error
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap devuelve el error subyacente
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError crea un nuevo error de autenticación
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// IsCredentialsError verifica si el error es de credenciales inválidas
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

// IsAuthorizationError verifica si el error es de autorización
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrExpiredToken)
}

// CodeForError mapea un error de autenticación a su código de API
func CodeForError(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return apiErrors.ErrInvalidCredentials
	case errors.Is(err, ErrExpiredToken):
		return apiErrors.ErrExpiredToken
	case errors.Is(err, ErrInvalidToken):
		return apiErrors.ErrInvalidToken
	case errors.Is(err, ErrMissingRequiredData):
		return apiErrors.ErrMissingRequiredData
	default:
		return apiErrors.ErrInternalServer
	}
}
