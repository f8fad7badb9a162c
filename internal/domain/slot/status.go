// Package slot contiene el motor de estado de columnas: modelo de estados, validación de
// capacidad, ranking de sugerencias, detección de capacidad liberada y envejecimiento de la
// gordura (overflow). Todas las funciones son puras y seguras para uso concurrente.
package slot

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Estanteria-api/internal/domain"
)

// MaxBoxes es el techo de cajas por columna y producto.
const MaxBoxes = 2

// Status es el estado de una columna para un producto.
// Los únicos valores posibles son Empty, Partial, Full y ReservedForProduction.
type Status uint8

const (
	Empty                 Status = iota // 0 cajas
	Partial                             // 1 caja
	Full                                // 2 cajas
	ReservedForProduction               // marcado "OK": no acepta cajas hasta que un gerente lo libere
)

// reservedMarker es la representación JSON/DB del estado reservado.
const reservedMarker = "OK"

// FromFillLevel construye el estado a partir de un número de cajas.
// Un nivel fuera de {0,1,2} es una violación de integridad, no se corrige.
func FromFillLevel(n int) (Status, error) {
	switch n {
	case 0:
		return Empty, nil
	case 1:
		return Partial, nil
	case 2:
		return Full, nil
	}
	return Empty, fmt.Errorf("%w: nivel %d", domain.ErrDataIntegrity, n)
}

// FillLevel devuelve el número de cajas. ok es false para ReservedForProduction.
func (s Status) FillLevel() (level int, ok bool) {
	switch s {
	case Empty:
		return 0, true
	case Partial:
		return 1, true
	case Full:
		return 2, true
	}
	return 0, false
}

// IsReserved indica si la columna está reservada para producción.
func (s Status) IsReserved() bool { return s == ReservedForProduction }

// Valid indica si s es uno de los cuatro estados definidos.
func (s Status) Valid() bool { return s <= ReservedForProduction }

// String devuelve el código estable del estado.
func (s Status) String() string {
	switch s {
	case Empty:
		return "EMPTY"
	case Partial:
		return "PARTIAL"
	case Full:
		return "FULL"
	case ReservedForProduction:
		return "RESERVED_FOR_PRODUCTION"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// MarshalJSON conserva el formato histórico: 0, 1, 2 o "OK".
func (s Status) MarshalJSON() ([]byte, error) {
	if s.IsReserved() {
		return json.Marshal(reservedMarker)
	}
	level, ok := s.FillLevel()
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDataIntegrity, s)
	}
	return json.Marshal(level)
}

// UnmarshalJSON acepta 0, 1, 2 o "OK". Cualquier otro valor es ErrDataIntegrity.
func (s *Status) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		st, err := FromFillLevel(n)
		if err != nil {
			return err
		}
		*s = st
		return nil
	}
	var marker string
	if err := json.Unmarshal(data, &marker); err != nil {
		return fmt.Errorf("%w: valor %s", domain.ErrDataIntegrity, string(data))
	}
	if marker != reservedMarker {
		return fmt.Errorf("%w: marcador %q", domain.ErrDataIntegrity, marker)
	}
	*s = ReservedForProduction
	return nil
}
