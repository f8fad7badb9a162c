package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/Estanteria-api/internal/domain"
	"github.com/jhoicas/Estanteria-api/internal/domain/entity"
	"github.com/jhoicas/Estanteria-api/internal/domain/repository"
	"github.com/jhoicas/Estanteria-api/internal/domain/slot"
)

// ProductRepository implementación en memoria de repository.ProductRepository.
type ProductRepository struct {
	g guard
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

func (r *ProductRepository) Create(_ context.Context, product *entity.Product) error {
	defer r.g.write()()
	if _, ok := r.g.store.products[product.ID]; ok {
		return fmt.Errorf("%w: producto %s ya existe", domain.ErrConflict, product.ID)
	}
	if product.Locations == nil {
		product.Locations = map[string]slot.Status{}
	}
	r.g.store.products[product.ID] = cloneProduct(product)
	return nil
}

func (r *ProductRepository) GetByID(_ context.Context, id string) (*entity.Product, error) {
	defer r.g.read()()
	p, ok := r.g.store.products[id]
	if !ok {
		return nil, nil
	}
	return cloneProduct(p), nil
}

// GetForUpdate dentro de TxRunner.Run el lock ya es exclusivo.
func (r *ProductRepository) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *ProductRepository) UpdateLocations(_ context.Context, id string, locations map[string]slot.Status) error {
	defer r.g.write()()
	p, ok := r.g.store.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Locations = cloneLocations(locations)
	p.UpdatedAt = time.Now()
	return nil
}

func (r *ProductRepository) Search(_ context.Context, query string, limit int) ([]*entity.Product, error) {
	defer r.g.read()()
	q := strings.ToLower(query)
	var out []*entity.Product
	for _, p := range r.g.store.products {
		if strings.Contains(strings.ToLower(p.Code), q) || strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, cloneProduct(p))
		}
	}
	sortByCode(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *ProductRepository) ListAll(_ context.Context) ([]*entity.Product, error) {
	defer r.g.read()()
	out := make([]*entity.Product, 0, len(r.g.store.products))
	for _, p := range r.g.store.products {
		out = append(out, cloneProduct(p))
	}
	sortByCode(out)
	return out, nil
}

func sortByCode(products []*entity.Product) {
	sort.Slice(products, func(i, j int) bool {
		return products[i].Code < products[j].Code
	})
}
