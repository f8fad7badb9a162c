package slot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/Estanteria-api/internal/domain"
)

// DefaultColumns es la distribución de columnas de cada piso.
var DefaultColumns = []string{"L1", "L2", "L3", "L4", "L5", "L6"}

// Layout es el conjunto fijo de columnas válidas. Se valida una sola vez al construirlo.
type Layout struct {
	columns []string
	index   map[string]int
}

// NewLayout valida que haya al menos una columna, sin vacíos ni duplicados.
// Las columnas se guardan en orden lexicográfico.
func NewLayout(columns []string) (*Layout, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: layout sin columnas", domain.ErrInvalidInput)
	}
	cols := make([]string, 0, len(columns))
	for _, c := range columns {
		c = strings.TrimSpace(c)
		if c == "" {
			return nil, fmt.Errorf("%w: columna vacía en layout", domain.ErrInvalidInput)
		}
		cols = append(cols, c)
	}
	sort.Strings(cols)
	index := make(map[string]int, len(cols))
	for i, c := range cols {
		if _, dup := index[c]; dup {
			return nil, fmt.Errorf("%w: columna %s duplicada", domain.ErrInvalidInput, c)
		}
		index[c] = i
	}
	return &Layout{columns: cols, index: index}, nil
}

// MustLayout es NewLayout para valores conocidos en tiempo de compilación.
func MustLayout(columns []string) *Layout {
	l, err := NewLayout(columns)
	if err != nil {
		panic(err)
	}
	return l
}

// Columns devuelve una copia de las columnas en orden.
func (l *Layout) Columns() []string {
	out := make([]string, len(l.columns))
	copy(out, l.columns)
	return out
}

// Len número de columnas.
func (l *Layout) Len() int { return len(l.columns) }

// Has indica si column pertenece al layout.
func (l *Layout) Has(column string) bool {
	_, ok := l.index[column]
	return ok
}

// Capacity cajas máximas por producto en el piso.
func (l *Layout) Capacity() int { return len(l.columns) * MaxBoxes }

// Board construye el tablero de un producto. Las columnas no mencionadas quedan en Empty;
// una columna fuera del layout devuelve ErrUnknownColumn.
func (l *Layout) Board(states map[string]Status) (Board, error) {
	b := Board{layout: l, states: make([]Status, len(l.columns))}
	for col, st := range states {
		i, ok := l.index[col]
		if !ok {
			return Board{}, fmt.Errorf("%w: %s", domain.ErrUnknownColumn, col)
		}
		if !st.Valid() {
			return Board{}, fmt.Errorf("%w: %s en %s", domain.ErrDataIntegrity, st, col)
		}
		b.states[i] = st
	}
	return b, nil
}

// Board es el estado de todas las columnas de un producto, indexado por posición del layout.
// Es un valor inmutable: With devuelve una copia.
type Board struct {
	layout *Layout
	states []Status
}

// Layout devuelve el layout del tablero.
func (b Board) Layout() *Layout { return b.layout }

// Status devuelve el estado de una columna.
func (b Board) Status(column string) (Status, error) {
	i, ok := b.layout.index[column]
	if !ok {
		return Empty, fmt.Errorf("%w: %s", domain.ErrUnknownColumn, column)
	}
	return b.states[i], nil
}

// With devuelve un tablero nuevo con column en st.
func (b Board) With(column string, st Status) (Board, error) {
	i, ok := b.layout.index[column]
	if !ok {
		return Board{}, fmt.Errorf("%w: %s", domain.ErrUnknownColumn, column)
	}
	next := Board{layout: b.layout, states: make([]Status, len(b.states))}
	copy(next.states, b.states)
	next.states[i] = st
	return next, nil
}

// Map devuelve el tablero como mapa columna → estado (forma de persistencia).
func (b Board) Map() map[string]Status {
	out := make(map[string]Status, len(b.states))
	for i, c := range b.layout.columns {
		out[c] = b.states[i]
	}
	return out
}

// Each recorre las columnas en orden lexicográfico.
func (b Board) Each(fn func(column string, st Status)) {
	for i, c := range b.layout.columns {
		fn(c, b.states[i])
	}
}

// TotalBoxes suma las cajas de las columnas no reservadas.
func (b Board) TotalBoxes() int {
	total := 0
	for _, st := range b.states {
		if level, ok := st.FillLevel(); ok {
			total += level
		}
	}
	return total
}

// Category clasifica un producto según el estado de sus columnas.
type Category string

const (
	CategoryCritical     Category = "CRITICAL"      // todas las columnas vacías
	CategoryLow          Category = "LOW"           // al menos una columna con 1 caja
	CategoryFull         Category = "FULL"          // al menos una columna llena
	CategoryInProduction Category = "IN_PRODUCTION" // al menos una columna reservada
)

// Category aplica la precedencia producción > lleno > bajo > crítico.
func (b Board) Category() Category {
	var hasPartial, hasFull bool
	for _, st := range b.states {
		switch st {
		case ReservedForProduction:
			return CategoryInProduction
		case Full:
			hasFull = true
		case Partial:
			hasPartial = true
		}
	}
	switch {
	case hasFull:
		return CategoryFull
	case hasPartial:
		return CategoryLow
	}
	return CategoryCritical
}
