package dto

import "time"

// MovementDTO registro del historial de movimientos.
type MovementDTO struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"type"`
	From      string    `json:"from,omitempty"`
	To        string    `json:"to,omitempty"`
	Quantity  int       `json:"quantity"`
	UserID    string    `json:"user_id"`
	Notes     string    `json:"notes,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Pagination metadatos de página numerada (page empieza en 1).
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

// MovementListResponse respuesta de GET /api/movements.
type MovementListResponse struct {
	Movements  []MovementDTO `json:"movements"`
	Pagination Pagination    `json:"pagination"`
}
