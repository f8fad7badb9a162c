package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
type DashboardStatsDTO struct {
	Critical      int              `json:"critical"`      // todas las columnas vacías
	Low           int              `json:"low"`           // al menos una columna con 1 caja
	Full          int              `json:"full"`          // al menos una columna llena
	InProduction  int              `json:"in_production"` // al menos una columna reservada
	TotalProducts int              `json:"total_products"`
	TotalBoxes    int              `json:"total_boxes"`
	Overflow      OverflowStatsDTO `json:"overflow"`
	Floors        []FloorStatsDTO  `json:"floors"`
	Recent        []MovementDTO    `json:"recent_movements"`
}

// OverflowStatsDTO resumen de la gordura.
type OverflowStatsDTO struct {
	Count  int               `json:"count"`
	Boxes  int               `json:"boxes"`
	Oldest *OverflowEntryDTO `json:"oldest"`
}

// FloorStatsDTO ocupación de un piso (capacidad = productos × columnas × 2).
type FloorStatsDTO struct {
	Floor     int             `json:"floor"`
	Products  int             `json:"products"`
	Boxes     int             `json:"boxes"`
	Capacity  int             `json:"capacity"`
	Occupancy decimal.Decimal `json:"occupancy"` // porcentaje redondeado a entero
}
