package entity

import "time"

// Estados de una orden de producción.
const (
	ProductionStatusInProduction = "IN_PRODUCTION"
	ProductionStatusCompleted    = "COMPLETED"
	ProductionStatusCancelled    = "CANCELLED"
)

// ProductionOrder se crea cuando un gerente reserva una columna para producción.
type ProductionOrder struct {
	ID              string
	ProductID       string
	Column          string
	QuantityOrdered int
	OrderedBy       string
	ExpectedDate    *time.Time
	Status          string
	Notes           string
	CreatedAt       time.Time
	CompletedAt     *time.Time
}
