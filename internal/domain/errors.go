package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUserNotFound = errors.New("usuario no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// Motor de columnas
	ErrInvalidQuantity   = errors.New("cantidad de cajas inválida")
	ErrInsufficientSpace = errors.New("espacio insuficiente en la columna")
	ErrUnknownColumn     = errors.New("columna desconocida")
	ErrDataIntegrity     = errors.New("estado de columna inconsistente")
)

