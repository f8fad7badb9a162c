package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Estanteria-api/internal/domain"
	"github.com/jhoicas/Estanteria-api/internal/domain/entity"
	"github.com/jhoicas/Estanteria-api/internal/domain/repository"
	"github.com/jhoicas/Estanteria-api/internal/domain/slot"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, code, name, color, color_suffix, material, floor, locations, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto con su mapa de columnas.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	locations, err := encodeLocations(product.Locations)
	if err != nil {
		return fmt.Errorf("encode locations: %w", err)
	}
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = r.q.Exec(ctx, query,
		product.ID, product.Code, product.Name, product.Color, product.ColorSuffix,
		product.Material, product.Floor, locations, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: código %s ya existe", domain.ErrConflict, product.Code)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if !validID(id) {
		return nil, nil
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	if !validID(id) {
		return nil, nil
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

// UpdateLocations reemplaza el mapa JSONB completo.
func (r *ProductRepo) UpdateLocations(ctx context.Context, id string, locations map[string]slot.Status) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	raw, err := encodeLocations(locations)
	if err != nil {
		return fmt.Errorf("encode locations: %w", err)
	}
	tag, err := r.q.Exec(ctx, `UPDATE products SET locations = $2, updated_at = now() WHERE id = $1`, id, raw)
	if err != nil {
		return fmt.Errorf("update locations: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Search busca por código o nombre (ILIKE).
func (r *ProductRepo) Search(ctx context.Context, query string, limit int) ([]*entity.Product, error) {
	sql := `
		SELECT ` + productColumns + `
		FROM products
		WHERE code ILIKE $1 OR name ILIKE $1
		ORDER BY code
		LIMIT $2`
	return r.list(ctx, sql, "%"+query+"%", limit)
}

// ListAll lista el catálogo completo ordenado por código.
func (r *ProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products ORDER BY code`)
}

func (r *ProductRepo) list(ctx context.Context, sql string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p   entity.Product
		raw []byte
	)
	if err := row.Scan(
		&p.ID, &p.Code, &p.Name, &p.Color, &p.ColorSuffix, &p.Material, &p.Floor,
		&raw, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	locations, err := decodeLocations(raw)
	if err != nil {
		return nil, fmt.Errorf("producto %s: %w", p.ID, err)
	}
	p.Locations = locations
	return &p, nil
}
