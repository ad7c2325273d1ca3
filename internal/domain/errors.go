package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// ErrInvalidTransition el cambio de estado solicitado no está permitido por el pipeline.
	ErrInvalidTransition = errors.New("transición de estado no permitida")
	// ErrLeadNotConvertible el lead no está en estado won o ya fue convertido.
	// Se trata como fallo de autorización (403), no de validación.
	ErrLeadNotConvertible = errors.New("el lead no es convertible")
	// ErrInvalidContactPerson el padre es de tipo individual y no admite personas de contacto.
	ErrInvalidContactPerson = errors.New("persona de contacto inválida para este tipo de entidad")
	// ErrFollowUpNotPending la acción requiere que el seguimiento esté pendiente.
	ErrFollowUpNotPending = errors.New("el seguimiento no está pendiente")
	// ErrSystemRole los roles de sistema no pueden eliminarse.
	ErrSystemRole = errors.New("los roles de sistema no pueden eliminarse")
)
