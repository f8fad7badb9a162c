package repository

import (
	"context"

	"github.com/jhoicas/Estanteria-api/internal/domain/entity"
)

// OverflowRepository define el puerto de persistencia para la gordura.
type OverflowRepository interface {
	Create(ctx context.Context, entry *entity.OverflowEntry) error
	// GetForUpdate bloquea la entrada; devuelve (nil, nil) si no existe.
	GetForUpdate(ctx context.Context, id string) (*entity.OverflowEntry, error)
	Update(ctx context.Context, entry *entity.OverflowEntry) error
	// ListUnresolved lista entradas abiertas; productID vacío = todas. Orden: StoredAt ascendente.
	ListUnresolved(ctx context.Context, productID string) ([]*entity.OverflowEntry, error)
}
