package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Estanteria-api/internal/domain/entity"
	"github.com/jhoicas/Estanteria-api/internal/domain/repository"
)

// ProductionOrderRepository implementación en memoria de repository.ProductionOrderRepository.
type ProductionOrderRepository struct {
	g guard
}

var _ repository.ProductionOrderRepository = (*ProductionOrderRepository)(nil)

func (r *ProductionOrderRepository) Create(_ context.Context, order *entity.ProductionOrder) error {
	defer r.g.write()()
	o := *order
	r.g.store.orders[o.ID] = &o
	return nil
}

func (r *ProductionOrderRepository) CompleteOpen(_ context.Context, productID, column, status string) (int, error) {
	defer r.g.write()()
	now := time.Now()
	n := 0
	for _, o := range r.g.store.orders {
		if o.ProductID != productID || o.Column != column || o.Status != entity.ProductionStatusInProduction {
			continue
		}
		o.Status = status
		completed := now
		o.CompletedAt = &completed
		n++
	}
	return n, nil
}

func (r *ProductionOrderRepository) ListByStatus(_ context.Context, status string) ([]*entity.ProductionOrder, error) {
	defer r.g.read()()
	out := []*entity.ProductionOrder{}
	for _, o := range r.g.store.orders {
		if o.Status == status {
			c := *o
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
