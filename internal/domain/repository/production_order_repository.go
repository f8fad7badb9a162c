package repository

import (
	"context"

	"github.com/jhoicas/Estanteria-api/internal/domain/entity"
)

// ProductionOrderRepository define el puerto para órdenes de producción.
type ProductionOrderRepository interface {
	Create(ctx context.Context, order *entity.ProductionOrder) error
	// CompleteOpen cierra las órdenes IN_PRODUCTION del producto/columna con el estado indicado.
	CompleteOpen(ctx context.Context, productID, column, status string) (int, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.ProductionOrder, error)
}
