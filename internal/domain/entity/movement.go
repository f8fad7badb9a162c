package entity

import "time"

// Tipos de movimiento de columnas.
const (
	MovementTypeStore             = "STORE"              // entrada a columna
	MovementTypeWithdraw          = "WITHDRAW"           // salida de columna
	MovementTypeTransfer          = "TRANSFER"           // gordura → columna
	MovementTypeOverflowIn        = "OVERFLOW_IN"        // recepción directa a la gordura
	MovementTypeProduction        = "PRODUCTION"         // columna reservada para producción
	MovementTypeProductionCleared = "PRODUCTION_CLEARED" // reserva liberada por gerencia
)

// Movement registro de auditoría de solo escritura; uno por cada operación que cambia estado.
type Movement struct {
	ID        string
	ProductID string
	Type      string
	From      string
	To        string
	Quantity  int
	UserID    string
	Notes     string
	Timestamp time.Time
}
