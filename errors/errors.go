package errors

import (
	"errors"
	"fmt"
)

// ErrorCode define el código de error de la aplicación
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken    ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists      ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone    ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"

	// Lugar errors
	ErrCodeLugarNotFound      ErrorCode = "LUGAR_NOT_FOUND"
	ErrCodeInvalidTipo        ErrorCode = "INVALID_TIPO"
	ErrCodeInvalidPresupuesto ErrorCode = "INVALID_PRESUPUESTO"
	ErrCodeInvalidDistancia   ErrorCode = "INVALID_DISTANCIA"
	ErrCodeInvalidPuntos      ErrorCode = "INVALID_PUNTOS"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError es el error de la aplicación
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAppError crea un AppError nuevo
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError verifica si el error es un AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError extrae el AppError de un error
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

var (
	ErrUsuarioNotFound      = errors.New("usuario no encontrado")
	ErrUsuarioAlreadyExists = errors.New("el usuario ya existe")
	ErrInvalidPassword      = errors.New("contraseña inválida")
	ErrUnauthorized         = errors.New("no autenticado")

	ErrLugarNotFound = errors.New("lugar no encontrado")
	ErrVisitaExists  = errors.New("el lugar ya fue visitado")

	ErrInvalidInput    = errors.New("datos inválidos")
	ErrMissingRequired = errors.New("falta un campo requerido")
	ErrInvalidFormat   = errors.New("formato inválido")
)
