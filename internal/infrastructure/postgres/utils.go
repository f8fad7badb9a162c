package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Estanteria-api/internal/domain"
	"github.com/jhoicas/Estanteria-api/internal/domain/slot"
)

// Querier es lo común entre *pgxpool.Pool y pgx.Tx: los repos funcionan igual dentro o fuera de una tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// validID indica si id puede compararse contra una columna UUID. Un id mal formado no existe:
// se responde como no encontrado sin llegar a pgx, que fallaría al codificar el parámetro.
func validID(id string) bool {
	return (len(id) == 36 || len(id) == 32) && uuid.Validate(id) == nil
}

// encodeLocations serializa el mapa de columnas a JSONB: {"L1": 2, "L3": "OK"}.
func encodeLocations(locations map[string]slot.Status) ([]byte, error) {
	if locations == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(locations)
}

// decodeLocations valida cada valor; un valor fuera de {0,1,2,"OK"} es ErrDataIntegrity.
func decodeLocations(raw []byte) (map[string]slot.Status, error) {
	out := map[string]slot.Status{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		if errors.Is(err, domain.ErrDataIntegrity) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: locations: %v", domain.ErrDataIntegrity, err)
	}
	return out, nil
}
