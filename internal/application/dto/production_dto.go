package dto

import "time"

// MarkProductionRequest body para POST /api/production/mark.
type MarkProductionRequest struct {
	ProductID       string     `json:"product_id"`
	Column          string     `json:"column"`
	QuantityOrdered int        `json:"quantity_ordered,omitempty"`
	ExpectedDate    *time.Time `json:"expected_date,omitempty"`
	Notes           string     `json:"notes,omitempty"`
}

// ClearProductionRequest body para POST /api/production/clear.
type ClearProductionRequest struct {
	ProductID string `json:"product_id"`
	Column    string `json:"column"`
	Cancelled bool   `json:"cancelled,omitempty"` // true = la orden se cancela en vez de completarse
	Notes     string `json:"notes,omitempty"`
}

// ProductionOrderDTO orden de producción.
type ProductionOrderDTO struct {
	ID              string     `json:"id"`
	ProductID       string     `json:"product_id"`
	Column          string     `json:"column"`
	QuantityOrdered int        `json:"quantity_ordered"`
	OrderedBy       string     `json:"ordered_by"`
	ExpectedDate    *time.Time `json:"expected_date,omitempty"`
	Status          string     `json:"status"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// ProductionListResponse listado de órdenes.
type ProductionListResponse struct {
	Count  int                  `json:"count"`
	Orders []ProductionOrderDTO `json:"orders"`
}
