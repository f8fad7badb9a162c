package dto

import (
	"time"

	"github.com/jhoicas/Estanteria-api/internal/domain/slot"
)

// Destinos posibles de un almacenamiento.
const (
	PlacementColumn   = "COLUMN"
	PlacementOverflow = "OVERFLOW"
)

// StoreRequest body para POST /api/storage/store. Column vacío = usar la sugerencia.
type StoreRequest struct {
	ProductID string `json:"product_id"`
	Column    string `json:"column,omitempty"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes,omitempty"`
}

// WithdrawRequest body para POST /api/storage/withdraw.
type WithdrawRequest struct {
	ProductID string `json:"product_id"`
	Column    string `json:"column"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes,omitempty"`
}

// OverflowRequest body para POST /api/storage/overflow. Floor 0 = piso del producto.
type OverflowRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Floor     int    `json:"floor,omitempty"`
	Column    string `json:"column,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// TransferRequest body para POST /api/overflow/transfer. Quantity 0 = todo lo pendiente.
type TransferRequest struct {
	OverflowID string `json:"overflow_id"`
	Column     string `json:"column"`
	Quantity   int    `json:"quantity,omitempty"`
}

// ColumnDTO estado de una columna listo para mostrar.
type ColumnDTO struct {
	Column string      `json:"column"`
	Status slot.Status `json:"status"` // 0, 1, 2 u "OK"
	Code   string      `json:"code"`   // EMPTY, PARTIAL, FULL, RESERVED_FOR_PRODUCTION
	Label  string      `json:"label"`
	Color  string      `json:"color"`
}

// NewColumnDTO arma el DTO de una columna.
func NewColumnDTO(column string, st slot.Status) ColumnDTO {
	return ColumnDTO{Column: column, Status: st, Code: st.String(), Label: st.Label(), Color: st.Color()}
}

// SuggestionDTO mejor ubicación sugerida.
type SuggestionDTO struct {
	Floor  int         `json:"floor"`
	Column string      `json:"column"`
	Status slot.Status `json:"status"`
	Label  string      `json:"label"`
	Reason string      `json:"reason"`
}

// NewSuggestionDTO convierte la sugerencia del motor.
func NewSuggestionDTO(s slot.Suggestion) *SuggestionDTO {
	return &SuggestionDTO{Floor: s.Floor, Column: s.Column, Status: s.Status, Label: s.Status.Label(), Reason: s.Reason}
}

// OverflowEntryDTO entrada de la gordura con su envejecimiento.
type OverflowEntryDTO struct {
	ID          string     `json:"id"`
	ProductID   string     `json:"product_id"`
	ProductCode string     `json:"product_code,omitempty"`
	ProductName string     `json:"product_name,omitempty"`
	Quantity    int        `json:"quantity"`
	Floor       int        `json:"floor"`
	Column      string     `json:"column,omitempty"`
	StoredAt    time.Time  `json:"stored_at"`
	DaysWaiting int        `json:"days_waiting"`
	Priority    int        `json:"priority"`
	Resolved    bool       `json:"resolved"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// StoreResponse resultado de almacenar: en columna o en la gordura.
type StoreResponse struct {
	Placement string            `json:"placement"`
	Column    *ColumnDTO        `json:"column,omitempty"`
	Overflow  *OverflowEntryDTO `json:"overflow,omitempty"`
	Message   string            `json:"message"`
}

// WithdrawResponse resultado de un retiro; Waiting solo se llena si se liberó espacio.
type WithdrawResponse struct {
	Column         ColumnDTO          `json:"column"`
	CapacityOpened bool               `json:"capacity_opened"`
	Waiting        []OverflowEntryDTO `json:"waiting"`
	Message        string             `json:"message"`
}

// TransferResponse resultado de pasar cajas de la gordura a una columna.
type TransferResponse struct {
	Column  ColumnDTO        `json:"column"`
	Entry   OverflowEntryDTO `json:"entry"`
	Message string           `json:"message"`
}

// OverflowListResponse listado de la gordura ordenado por prioridad.
type OverflowListResponse struct {
	Total int                `json:"total"`
	Items []OverflowEntryDTO `json:"items"`
}
