package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Estanteria-api/internal/domain/repository"
	"github.com/jhoicas/Estanteria-api/internal/domain/slot"
)

var _ repository.OccupancyRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// FloorOccupancy agrupa cajas y ocupación por piso directamente sobre products.locations.
// Un producto entra al cálculo solo si todas sus claves están en el layout y todos sus
// valores son 0, 1, 2 u "OK"; las columnas reservadas no suman cajas.
// La ocupación sale como NUMERIC (ROUND a entero) y se escanea en decimal.Decimal.
func (r *AnalyticsRepo) FloorOccupancy(ctx context.Context, layout *slot.Layout) ([]repository.FloorOccupancy, error) {
	const query = `
	WITH valid AS (
	    SELECT
	        p.floor,
	        (SELECT COALESCE(SUM(l.value::INT), 0)
	           FROM jsonb_each(p.locations) l
	          WHERE jsonb_typeof(l.value) = 'number')                          AS boxes
	    FROM products p
	    WHERE NOT EXISTS (
	        SELECT 1
	          FROM jsonb_each(p.locations) l
	         WHERE l.key <> ALL($1::TEXT[])
	            OR l.value NOT IN ('0'::JSONB, '1'::JSONB, '2'::JSONB, '"OK"'::JSONB)
	    )
	)
	SELECT
	    floor,
	    COUNT(*)                                                               AS products,
	    SUM(boxes)::INT                                                        AS boxes,
	    (COUNT(*) * $2::INT)::INT                                              AS capacity,
	    COALESCE(ROUND(SUM(boxes)::NUMERIC * 100 / NULLIF(COUNT(*) * $2::INT, 0), 0), 0) AS occupancy
	FROM valid
	GROUP BY floor
	ORDER BY floor`

	rows, err := r.q.Query(ctx, query, layout.Columns(), layout.Capacity())
	if err != nil {
		return nil, fmt.Errorf("analytics.FloorOccupancy: %w", err)
	}
	defer rows.Close()

	var results []repository.FloorOccupancy
	for rows.Next() {
		var row repository.FloorOccupancy
		if err := rows.Scan(
			&row.Floor,
			&row.Products,
			&row.Boxes,
			&row.Capacity,
			&row.Occupancy,
		); err != nil {
			return nil, fmt.Errorf("analytics.FloorOccupancy scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
