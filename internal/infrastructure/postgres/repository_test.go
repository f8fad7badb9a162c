package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estanteria-api/internal/domain"
	"github.com/jhoicas/Estanteria-api/internal/domain/entity"
	"github.com/jhoicas/Estanteria-api/internal/domain/slot"
	"github.com/jhoicas/Estanteria-api/internal/infrastructure/postgres"
)

// ──────────────────────────────────────────────────────────────────────────────
// IDs mal formados: se resuelven sin consultar la base (Querier nil)
// ──────────────────────────────────────────────────────────────────────────────

var malformedIDs = []string{"no-uuid", "prod-1510x-cr", "123", "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"}

func TestProductRepo_IDMalFormadoEsInexistente(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewProductRepository(nil)

	for _, id := range malformedIDs {
		t.Run(id, func(t *testing.T) {
			p, err := repo.GetByID(ctx, id)
			require.NoError(t, err)
			assert.Nil(t, p)

			p, err = repo.GetForUpdate(ctx, id)
			require.NoError(t, err)
			assert.Nil(t, p)

			err = repo.UpdateLocations(ctx, id, map[string]slot.Status{"L1": slot.Full})
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestOverflowRepo_IDMalFormadoEsInexistente(t *testing.T) {
	ctx := context.Background()
	repo := postgres.NewOverflowRepository(nil)

	for _, id := range malformedIDs {
		t.Run(id, func(t *testing.T) {
			e, err := repo.GetForUpdate(ctx, id)
			require.NoError(t, err)
			assert.Nil(t, e)

			err = repo.Update(ctx, &entity.OverflowEntry{ID: id, Quantity: 1})
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}

func TestProductionOrderRepo_ProductoMalFormadoNoCierraNada(t *testing.T) {
	n, err := postgres.NewProductionOrderRepository(nil).
		CompleteOpen(context.Background(), "no-uuid", "L1", entity.ProductionStatusCompleted)
	require.NoError(t, err)
	assert.Zero(t, n)
}
