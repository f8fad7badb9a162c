package slot_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estanteria-api/internal/domain"
	"github.com/jhoicas/Estanteria-api/internal/domain/slot"
)

var numericStates = []slot.Status{slot.Empty, slot.Partial, slot.Full}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyDelta
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyDelta_IdaYVuelta(t *testing.T) {
	for _, st := range numericStates {
		for q := 0; q <= slot.RemainingCapacity(st); q++ {
			added, err := slot.ApplyDelta(st, q)
			require.NoError(t, err)
			back, err := slot.ApplyDelta(added, -q)
			require.NoError(t, err)
			assert.Equal(t, st, back, "estado %s, q=%d", st, q)
		}
	}
}

func TestApplyDelta_ReservadoEsAbsorbente(t *testing.T) {
	for _, d := range []int{-2, -1, 0, 1, 2} {
		got, err := slot.ApplyDelta(slot.ReservedForProduction, d)
		require.NoError(t, err)
		assert.Equal(t, slot.ReservedForProduction, got)
	}
}

func TestApplyDelta_SumaSeTopaEnDos(t *testing.T) {
	got, err := slot.ApplyDelta(slot.Partial, 5)
	require.NoError(t, err)
	assert.Equal(t, slot.Full, got)
}

func TestApplyDelta_RetiroMayorQueNivel(t *testing.T) {
	_, err := slot.ApplyDelta(slot.Partial, -2)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = slot.ApplyDelta(slot.Empty, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestApplyDelta_CeroEsNoOp(t *testing.T) {
	for _, st := range numericStates {
		got, err := slot.ApplyDelta(st, 0)
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}
}

func TestApplyDelta_EstadoInvalido(t *testing.T) {
	_, err := slot.ApplyDelta(slot.Status(9), 1)
	assert.ErrorIs(t, err, domain.ErrDataIntegrity)
}

func TestClearReservation(t *testing.T) {
	assert.Equal(t, slot.Empty, slot.ClearReservation(slot.ReservedForProduction))
	assert.Equal(t, slot.Partial, slot.ClearReservation(slot.Partial))
}

// ──────────────────────────────────────────────────────────────────────────────
// CanAccept
// ──────────────────────────────────────────────────────────────────────────────

func TestCanAccept_Grilla(t *testing.T) {
	for _, st := range numericStates {
		level, _ := st.FillLevel()
		for q := 0; q <= 2; q++ {
			assert.Equal(t, level+q <= 2, slot.CanAccept(st, q), "estado %s, q=%d", st, q)
		}
	}
}

func TestCanAccept_ReservadoNuncaAcepta(t *testing.T) {
	for q := 0; q <= 2; q++ {
		assert.False(t, slot.CanAccept(slot.ReservedForProduction, q))
	}
	assert.Equal(t, 0, slot.RemainingCapacity(slot.ReservedForProduction))
}

// ──────────────────────────────────────────────────────────────────────────────
// FromFillLevel / JSON
// ──────────────────────────────────────────────────────────────────────────────

func TestFromFillLevel_FueraDeRango(t *testing.T) {
	_, err := slot.FromFillLevel(3)
	assert.ErrorIs(t, err, domain.ErrDataIntegrity)
	_, err = slot.FromFillLevel(-1)
	assert.ErrorIs(t, err, domain.ErrDataIntegrity)
}

func TestStatusJSON_FormatoHistorico(t *testing.T) {
	raw, err := json.Marshal(map[string]slot.Status{
		"L1": slot.Empty, "L2": slot.Partial, "L3": slot.Full, "L4": slot.ReservedForProduction,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"L1":0,"L2":1,"L3":2,"L4":"OK"}`, string(raw))

	var back map[string]slot.Status
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, slot.ReservedForProduction, back["L4"])
	assert.Equal(t, slot.Full, back["L3"])
}

func TestStatusJSON_ValoresInvalidos(t *testing.T) {
	for _, in := range []string{`3`, `"NO"`, `true`} {
		var s slot.Status
		err := json.Unmarshal([]byte(in), &s)
		assert.ErrorIs(t, err, domain.ErrDataIntegrity, "entrada %s", in)
	}
}

func TestLegend(t *testing.T) {
	legend := slot.Legend()
	require.Len(t, legend, 4)
	assert.Equal(t, "Vacío", legend[0].Label)
	assert.Equal(t, slot.ColorGreen, legend[0].Color)
	assert.Equal(t, "En producción", legend[3].Label)
	assert.Equal(t, slot.ColorBlue, legend[3].Color)
}

// ──────────────────────────────────────────────────────────────────────────────
// DidCapacityOpen
// ──────────────────────────────────────────────────────────────────────────────

func TestDidCapacityOpen_Casos(t *testing.T) {
	assert.True(t, slot.DidCapacityOpen(slot.Full, slot.Partial))
	assert.True(t, slot.DidCapacityOpen(slot.Full, slot.Empty))
	assert.True(t, slot.DidCapacityOpen(slot.Partial, slot.Empty))
	assert.False(t, slot.DidCapacityOpen(slot.Empty, slot.Partial))
	assert.False(t, slot.DidCapacityOpen(slot.ReservedForProduction, slot.Empty))
	assert.False(t, slot.DidCapacityOpen(slot.Full, slot.ReservedForProduction))
}

func TestTransitions_TablaCompleta(t *testing.T) {
	table := slot.Transitions()
	require.Len(t, table, 16)
	opening := 0
	for tr, open := range table {
		assert.Equal(t, slot.DidCapacityOpen(tr.From, tr.To), open)
		if open {
			opening++
		}
		if tr.From == tr.To || tr.From.IsReserved() || tr.To.IsReserved() {
			assert.False(t, open, "%s → %s", tr.From, tr.To)
		}
	}
	assert.Equal(t, 3, opening)
}

// Escenario: L3 llena, se retira 1 caja → PARTIAL y se abre espacio.
func TestEscenario_RetiroEnColumnaLlena(t *testing.T) {
	next, err := slot.ApplyDelta(slot.Full, -1)
	require.NoError(t, err)
	assert.Equal(t, slot.Partial, next)
	assert.True(t, slot.DidCapacityOpen(slot.Full, next))
}

// ──────────────────────────────────────────────────────────────────────────────
// Aging / Priority
// ──────────────────────────────────────────────────────────────────────────────

func TestDaysWaiting(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, slot.DaysWaiting(now, now))
	assert.Equal(t, 0, slot.DaysWaiting(now.Add(-23*time.Hour), now))
	assert.Equal(t, 1, slot.DaysWaiting(now.Add(-25*time.Hour), now))
	assert.Equal(t, 10, slot.DaysWaiting(now.AddDate(0, 0, -10), now))
	assert.Equal(t, 0, slot.DaysWaiting(now.Add(time.Hour), now), "fecha futura no da días negativos")
}

func TestPriority_MasAntiguoNuncaMenor(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tenDays := slot.Priority(now.AddDate(0, 0, -10), now)
	twoDays := slot.Priority(now.AddDate(0, 0, -2), now)
	assert.GreaterOrEqual(t, tenDays, twoDays)

	prev := slot.Priority(now, now)
	for h := 1; h <= 24*30; h++ {
		p := slot.Priority(now.Add(-time.Duration(h)*time.Hour), now)
		assert.GreaterOrEqual(t, p, prev)
		prev = p
	}
	assert.Equal(t, slot.BasePriority, slot.Priority(now, now))
}

// ──────────────────────────────────────────────────────────────────────────────
// Occupancy
// ──────────────────────────────────────────────────────────────────────────────

func TestOccupancy(t *testing.T) {
	assert.True(t, decimal.Zero.Equal(slot.Occupancy(0, 0)))
	assert.True(t, decimal.NewFromInt(50).Equal(slot.Occupancy(6, 12)))
	assert.True(t, decimal.NewFromInt(33).Equal(slot.Occupancy(4, 12)))
	assert.True(t, decimal.NewFromInt(21).Equal(slot.Occupancy(5, 24)))
	// 1/8 = 12.5 → 13, igual que ROUND(numeric, 0)
	assert.True(t, decimal.NewFromInt(13).Equal(slot.Occupancy(1, 8)))
}
