package entity

import (
	"time"

	"github.com/jhoicas/Estanteria-api/internal/domain/slot"
)

// Product representa una pieza de ferretería almacenada por columnas en un piso.
// Locations guarda el estado de cada columna que el producto ha tocado (JSONB en DB).
type Product struct {
	ID          string
	Code        string // ej. "1510X CR"
	Name        string
	Color       string
	ColorSuffix string // MA, ME, BZ, BR, PT, CR
	Material    string
	Floor       int
	Locations   map[string]slot.Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Board construye el tablero del producto validado contra el layout del almacén.
func (p *Product) Board(layout *slot.Layout) (slot.Board, error) {
	return layout.Board(p.Locations)
}

// colorNames traduce el sufijo de color del código.
var colorNames = map[string]string{
	"MA": "Marrón",
	"ME": "Metálico",
	"BZ": "Bronce",
	"BR": "Blanco",
	"PT": "Negro",
	"CR": "Cromado",
}

// ColorName devuelve el nombre del color a partir del sufijo; si no se conoce, el sufijo.
func ColorName(suffix string) string {
	if name, ok := colorNames[suffix]; ok {
		return name
	}
	return suffix
}
