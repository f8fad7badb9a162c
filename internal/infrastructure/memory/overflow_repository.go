package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/Estanteria-api/internal/domain"
	"github.com/jhoicas/Estanteria-api/internal/domain/entity"
	"github.com/jhoicas/Estanteria-api/internal/domain/repository"
)

// OverflowRepository implementación en memoria de repository.OverflowRepository.
type OverflowRepository struct {
	g guard
}

var _ repository.OverflowRepository = (*OverflowRepository)(nil)

func (r *OverflowRepository) Create(_ context.Context, entry *entity.OverflowEntry) error {
	defer r.g.write()()
	if _, ok := r.g.store.overflow[entry.ID]; ok {
		return fmt.Errorf("%w: entrada %s ya existe", domain.ErrConflict, entry.ID)
	}
	r.g.store.overflow[entry.ID] = cloneEntry(entry)
	return nil
}

func (r *OverflowRepository) GetForUpdate(_ context.Context, id string) (*entity.OverflowEntry, error) {
	defer r.g.read()()
	e, ok := r.g.store.overflow[id]
	if !ok {
		return nil, nil
	}
	return cloneEntry(e), nil
}

func (r *OverflowRepository) Update(_ context.Context, entry *entity.OverflowEntry) error {
	defer r.g.write()()
	if _, ok := r.g.store.overflow[entry.ID]; !ok {
		return domain.ErrNotFound
	}
	r.g.store.overflow[entry.ID] = cloneEntry(entry)
	return nil
}

func (r *OverflowRepository) ListUnresolved(_ context.Context, productID string) ([]*entity.OverflowEntry, error) {
	defer r.g.read()()
	out := []*entity.OverflowEntry{}
	for _, e := range r.g.store.overflow {
		if e.Resolved || (productID != "" && e.ProductID != productID) {
			continue
		}
		out = append(out, cloneEntry(e))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StoredAt.Equal(out[j].StoredAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].StoredAt.Before(out[j].StoredAt)
	})
	return out, nil
}
