package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Estanteria-api/internal/domain/slot"
)

// FloorOccupancy resultado agregado de cajas por piso.
// Capacity = productos × columnas del layout × 2.
type FloorOccupancy struct {
	Floor     int
	Products  int
	Boxes     int
	Capacity  int
	Occupancy decimal.Decimal // porcentaje redondeado a entero
}

// OccupancyRepository consultas de solo lectura para la ocupación del almacén.
type OccupancyRepository interface {
	// FloorOccupancy agrupa por piso los productos cuyo mapa es válido para el layout;
	// los productos con columnas desconocidas o estados inválidos no se cuentan.
	// Solo devuelve pisos con al menos un producto, ordenados por piso.
	FloorOccupancy(ctx context.Context, layout *slot.Layout) ([]FloorOccupancy, error)
}
