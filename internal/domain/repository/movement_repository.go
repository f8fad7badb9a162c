package repository

import (
	"context"

	"github.com/jhoicas/Estanteria-api/internal/domain/entity"
)

// MovementRepository registro de auditoría (solo inserción y lectura para historial).
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	// List devuelve movimientos más recientes primero y el total; productID vacío = todos.
	List(ctx context.Context, productID string, limit, offset int) ([]*entity.Movement, int, error)
}
