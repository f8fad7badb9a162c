package repository

import (
	"context"

	"github.com/jhoicas/Estanteria-api/internal/domain/entity"
	"github.com/jhoicas/Estanteria-api/internal/domain/slot"
)

// ProductRepository define el puerto de persistencia para Product y su mapa de columnas.
// GetByID y GetForUpdate devuelven (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) hasta el fin de la transacción.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	UpdateLocations(ctx context.Context, id string, locations map[string]slot.Status) error
	// Search busca por código o nombre (sin distinguir mayúsculas).
	Search(ctx context.Context, query string, limit int) ([]*entity.Product, error)
	ListAll(ctx context.Context) ([]*entity.Product, error)
}
