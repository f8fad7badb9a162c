package slot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estanteria-api/internal/domain"
	"github.com/jhoicas/Estanteria-api/internal/domain/slot"
)

func sixColumns(t *testing.T) *slot.Layout {
	t.Helper()
	l, err := slot.NewLayout(slot.DefaultColumns)
	require.NoError(t, err)
	return l
}

func TestNewLayout_Validaciones(t *testing.T) {
	_, err := slot.NewLayout(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = slot.NewLayout([]string{"L1", " "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = slot.NewLayout([]string{"L1", "L2", "L1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	l, err := slot.NewLayout([]string{"L2", "L1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"L1", "L2"}, l.Columns())
	assert.Equal(t, 4, l.Capacity())
}

func TestBoard_ColumnaDesconocida(t *testing.T) {
	l := sixColumns(t)
	_, err := l.Board(map[string]slot.Status{"L9": slot.Full})
	assert.ErrorIs(t, err, domain.ErrUnknownColumn)

	b, err := l.Board(nil)
	require.NoError(t, err)
	_, err = b.Status("X")
	assert.ErrorIs(t, err, domain.ErrUnknownColumn)
	_, err = b.With("X", slot.Full)
	assert.ErrorIs(t, err, domain.ErrUnknownColumn)
}

func TestBoard_ColumnasNoMencionadasVacias(t *testing.T) {
	b, err := sixColumns(t).Board(map[string]slot.Status{"L2": slot.Full})
	require.NoError(t, err)

	st, err := b.Status("L5")
	require.NoError(t, err)
	assert.Equal(t, slot.Empty, st)
	assert.Len(t, b.Map(), 6)
	assert.Equal(t, 2, b.TotalBoxes())
}

func TestBoard_WithNoMutaOriginal(t *testing.T) {
	b, err := sixColumns(t).Board(nil)
	require.NoError(t, err)
	next, err := b.With("L1", slot.Partial)
	require.NoError(t, err)

	orig, _ := b.Status("L1")
	updated, _ := next.Status("L1")
	assert.Equal(t, slot.Empty, orig)
	assert.Equal(t, slot.Partial, updated)
}

func TestBoard_Category(t *testing.T) {
	l := sixColumns(t)
	cases := []struct {
		states map[string]slot.Status
		want   slot.Category
	}{
		{nil, slot.CategoryCritical},
		{map[string]slot.Status{"L1": slot.Partial}, slot.CategoryLow},
		{map[string]slot.Status{"L1": slot.Partial, "L2": slot.Full}, slot.CategoryFull},
		{map[string]slot.Status{"L1": slot.Full, "L6": slot.ReservedForProduction}, slot.CategoryInProduction},
	}
	for _, c := range cases {
		b, err := l.Board(c.states)
		require.NoError(t, err)
		assert.Equal(t, c.want, b.Category())
	}
}
