package slot

import (
	"fmt"

	"github.com/jhoicas/Estanteria-api/internal/domain"
)

// ApplyDelta calcula el estado resultante de sumar (o restar) cajas a una columna.
//
//   - ReservedForProduction es absorbente: se devuelve sin cambios.
//   - delta = 0 es un no-op.
//   - Las sumas se topan en MaxBoxes; quien suma debe llamar antes a CanAccept.
//   - Un retiro mayor que el nivel actual devuelve ErrInvalidQuantity.
func ApplyDelta(current Status, delta int) (Status, error) {
	if current.IsReserved() {
		return current, nil
	}
	level, ok := current.FillLevel()
	if !ok {
		return current, fmt.Errorf("%w: %s", domain.ErrDataIntegrity, current)
	}
	if delta == 0 {
		return current, nil
	}
	next := level + delta
	if next < 0 {
		return current, fmt.Errorf("%w: retiro de %d con %d caja(s) en la columna", domain.ErrInvalidQuantity, -delta, level)
	}
	return FromFillLevel(min(next, MaxBoxes))
}

// ClearReservation libera el marcador de producción; la columna vuelve a Empty.
// Es una acción de gerencia separada de ApplyDelta.
func ClearReservation(current Status) Status {
	if current.IsReserved() {
		return Empty
	}
	return current
}
