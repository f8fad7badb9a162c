package slot

import "github.com/shopspring/decimal"

// CanAccept indica si la columna admite quantity cajas más sin superar MaxBoxes.
// Debe consultarse antes de ApplyDelta en toda suma: las solicitudes que exceden la
// capacidad se rechazan completas, nunca se recortan.
func CanAccept(current Status, quantity int) bool {
	if current.IsReserved() {
		return false
	}
	level, ok := current.FillLevel()
	if !ok {
		return false
	}
	return level+quantity <= MaxBoxes
}

// RemainingCapacity devuelve cuántas cajas caben todavía (0 si está reservada).
func RemainingCapacity(current Status) int {
	level, ok := current.FillLevel()
	if !ok {
		return 0
	}
	return MaxBoxes - level
}

// Occupancy porcentaje boxes/capacity redondeado a entero (mitades hacia arriba, como ROUND
// de PostgreSQL); capacidad 0 = 0%.
func Occupancy(boxes, capacity int) decimal.Decimal {
	if capacity <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(boxes)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(capacity))).
		Round(0)
}
