package memory

import (
	"context"

	"github.com/jhoicas/Estanteria-api/internal/domain/entity"
	"github.com/jhoicas/Estanteria-api/internal/domain/repository"
)

// MovementRepository implementación en memoria de repository.MovementRepository (solo inserción).
type MovementRepository struct {
	g guard
}

var _ repository.MovementRepository = (*MovementRepository)(nil)

func (r *MovementRepository) Create(_ context.Context, movement *entity.Movement) error {
	defer r.g.write()()
	m := *movement
	r.g.store.moves = append(r.g.store.moves, &m)
	return nil
}

// List recorre desde el final: el último insertado es el más reciente.
func (r *MovementRepository) List(_ context.Context, productID string, limit, offset int) ([]*entity.Movement, int, error) {
	defer r.g.read()()
	var matched []*entity.Movement
	for i := len(r.g.store.moves) - 1; i >= 0; i-- {
		m := r.g.store.moves[i]
		if productID != "" && m.ProductID != productID {
			continue
		}
		matched = append(matched, m)
	}
	total := len(matched)
	if offset >= total {
		return []*entity.Movement{}, total, nil
	}
	end := total
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]*entity.Movement, 0, end-offset)
	for _, m := range matched[offset:end] {
		c := *m
		out = append(out, &c)
	}
	return out, total, nil
}
