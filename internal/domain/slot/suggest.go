package slot

import (
	"fmt"
	"sort"
)

// Candidate es una columna que todavía admite cajas.
type Candidate struct {
	Column string
	Status Status
	Room   int // cajas que caben
}

// Suggestion es la mejor ubicación para stock entrante de un producto.
type Suggestion struct {
	Floor  int    `json:"floor"`
	Column string `json:"column"`
	Status Status `json:"status"`
	Reason string `json:"reason"`
}

// Rank ordena las columnas candidatas (ni llenas ni reservadas): primero por nivel de
// llenado ascendente y luego por identificador de columna, para que el resultado sea
// determinista.
func Rank(b Board) []Candidate {
	var out []Candidate
	b.Each(func(column string, st Status) {
		if st == Full || st.IsReserved() {
			return
		}
		out = append(out, Candidate{Column: column, Status: st, Room: RemainingCapacity(st)})
	})
	sort.SliceStable(out, func(i, j int) bool {
		li, _ := out[i].Status.FillLevel()
		lj, _ := out[j].Status.FillLevel()
		if li != lj {
			return li < lj
		}
		return out[i].Column < out[j].Column
	})
	return out
}

// Suggest devuelve la mejor columna del producto en su piso. ok es false cuando no hay
// espacio y la mercancía debe ir a la gordura.
func Suggest(floor int, b Board) (s Suggestion, ok bool) {
	ranked := Rank(b)
	if len(ranked) == 0 {
		return Suggestion{}, false
	}
	best := ranked[0]
	return Suggestion{
		Floor:  floor,
		Column: best.Column,
		Status: best.Status,
		Reason: reason(best),
	}, true
}

func reason(c Candidate) string {
	if c.Status == Empty {
		return fmt.Sprintf("Columna %s está vacía - ubicación ideal", c.Column)
	}
	return fmt.Sprintf("Columna %s tiene espacio para 1 caja más", c.Column)
}
