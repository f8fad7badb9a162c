package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Estanteria-api/internal/domain/entity"
	"github.com/jhoicas/Estanteria-api/internal/domain/repository"
)

var _ repository.ProductionOrderRepository = (*ProductionOrderRepo)(nil)

// ProductionOrderRepo órdenes de producción sobre PostgreSQL.
type ProductionOrderRepo struct {
	q Querier
}

// NewProductionOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionOrderRepository(q Querier) *ProductionOrderRepo {
	return &ProductionOrderRepo{q: q}
}

func (r *ProductionOrderRepo) Create(ctx context.Context, o *entity.ProductionOrder) error {
	query := `
		INSERT INTO production_orders (id, product_id, column_id, quantity_ordered, ordered_by, expected_date, status, notes, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.ProductID, o.Column, o.QuantityOrdered, o.OrderedBy, o.ExpectedDate,
		o.Status, o.Notes, o.CreatedAt, o.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("insert production order: %w", err)
	}
	return nil
}

// CompleteOpen cierra las órdenes abiertas de la columna; devuelve cuántas cambió.
func (r *ProductionOrderRepo) CompleteOpen(ctx context.Context, productID, column, status string) (int, error) {
	if !validID(productID) {
		return 0, nil
	}
	query := `
		UPDATE production_orders
		SET status = $3, completed_at = now()
		WHERE product_id = $1 AND column_id = $2 AND status = $4`
	tag, err := r.q.Exec(ctx, query, productID, column, status, entity.ProductionStatusInProduction)
	if err != nil {
		return 0, fmt.Errorf("complete production orders: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *ProductionOrderRepo) ListByStatus(ctx context.Context, status string) ([]*entity.ProductionOrder, error) {
	query := `
		SELECT id, product_id, column_id, quantity_ordered, ordered_by, expected_date, status, notes, created_at, completed_at
		FROM production_orders
		WHERE status = $1
		ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("list production orders: %w", err)
	}
	defer rows.Close()

	list := []*entity.ProductionOrder{}
	for rows.Next() {
		var o entity.ProductionOrder
		if err := rows.Scan(
			&o.ID, &o.ProductID, &o.Column, &o.QuantityOrdered, &o.OrderedBy, &o.ExpectedDate,
			&o.Status, &o.Notes, &o.CreatedAt, &o.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan production order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
