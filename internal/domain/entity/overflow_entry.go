package entity

import (
	"time"

	"github.com/jhoicas/Estanteria-api/internal/domain/slot"
)

// OverflowArea es el nombre de la zona de gordura en los movimientos.
const OverflowArea = "GORDURA"

// OverflowEntry representa cajas que no cupieron en su columna y esperan en la gordura.
// Column vacío significa "cualquier columna del piso".
type OverflowEntry struct {
	ID         string
	ProductID  string
	Quantity   int
	Floor      int
	Column     string
	StoredAt   time.Time
	Resolved   bool
	ResolvedAt *time.Time
	Notes      string
}

// DaysWaiting días completos en espera.
func (e *OverflowEntry) DaysWaiting(now time.Time) int {
	return slot.DaysWaiting(e.StoredAt, now)
}

// Priority prioridad por envejecimiento (mayor = más urgente).
func (e *OverflowEntry) Priority(now time.Time) int {
	return slot.Priority(e.StoredAt, now)
}

// Waits indica si la entrada está esperando espacio en (floor, column).
func (e *OverflowEntry) Waits(floor int, column string) bool {
	if e.Resolved || e.Floor != floor {
		return false
	}
	return e.Column == "" || e.Column == column
}

// Take descuenta quantity cajas; al llegar a cero la entrada queda resuelta.
// El llamador valida que 0 < quantity <= Quantity.
func (e *OverflowEntry) Take(quantity int, now time.Time) {
	e.Quantity -= quantity
	if e.Quantity <= 0 {
		e.Quantity = 0
		e.Resolved = true
		e.ResolvedAt = &now
	}
}
