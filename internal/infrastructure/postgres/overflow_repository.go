package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Estanteria-api/internal/domain"
	"github.com/jhoicas/Estanteria-api/internal/domain/entity"
	"github.com/jhoicas/Estanteria-api/internal/domain/repository"
)

var _ repository.OverflowRepository = (*OverflowRepo)(nil)

const overflowColumns = `id, product_id, quantity, floor, column_id, stored_at, resolved, resolved_at, notes`

// OverflowRepo implementación de OverflowRepository sobre PostgreSQL (tabla overflow_entries).
type OverflowRepo struct {
	q Querier
}

// NewOverflowRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOverflowRepository(q Querier) *OverflowRepo {
	return &OverflowRepo{q: q}
}

func (r *OverflowRepo) Create(ctx context.Context, entry *entity.OverflowEntry) error {
	query := `
		INSERT INTO overflow_entries (` + overflowColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.ProductID, entry.Quantity, entry.Floor, entry.Column,
		entry.StoredAt, entry.Resolved, entry.ResolvedAt, entry.Notes,
	)
	if err != nil {
		return fmt.Errorf("insert overflow entry: %w", err)
	}
	return nil
}

// GetForUpdate bloquea la entrada (SELECT FOR UPDATE).
func (r *OverflowRepo) GetForUpdate(ctx context.Context, id string) (*entity.OverflowEntry, error) {
	if !validID(id) {
		return nil, nil
	}
	query := `SELECT ` + overflowColumns + ` FROM overflow_entries WHERE id = $1 FOR UPDATE`
	e, err := scanOverflow(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get overflow entry for update: %w", err)
	}
	return e, nil
}

// Update persiste cantidad y resolución.
func (r *OverflowRepo) Update(ctx context.Context, entry *entity.OverflowEntry) error {
	if !validID(entry.ID) {
		return domain.ErrNotFound
	}
	query := `
		UPDATE overflow_entries
		SET quantity = $2, resolved = $3, resolved_at = $4, notes = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, entry.ID, entry.Quantity, entry.Resolved, entry.ResolvedAt, entry.Notes)
	if err != nil {
		return fmt.Errorf("update overflow entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListUnresolved entradas abiertas por antigüedad; productID vacío = todas.
func (r *OverflowRepo) ListUnresolved(ctx context.Context, productID string) ([]*entity.OverflowEntry, error) {
	query := `
		SELECT ` + overflowColumns + `
		FROM overflow_entries
		WHERE resolved = false AND ($1 = '' OR product_id::text = $1)
		ORDER BY stored_at ASC, id ASC`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list overflow entries: %w", err)
	}
	defer rows.Close()

	list := []*entity.OverflowEntry{}
	for rows.Next() {
		e, err := scanOverflow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan overflow entry: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanOverflow(row pgx.Row) (*entity.OverflowEntry, error) {
	var e entity.OverflowEntry
	err := row.Scan(
		&e.ID, &e.ProductID, &e.Quantity, &e.Floor, &e.Column,
		&e.StoredAt, &e.Resolved, &e.ResolvedAt, &e.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
