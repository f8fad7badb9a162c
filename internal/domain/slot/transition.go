package slot

// Transition es un par (anterior, nuevo) de estados de una columna.
type Transition struct {
	From Status
	To   Status
}

// capacityOpening enumera las únicas transiciones que liberan espacio para la gordura.
// Cualquier par ausente (incluido todo lo que entra o sale de ReservedForProduction y
// los pares sin cambio) no libera capacidad.
var capacityOpening = map[Transition]bool{
	{From: Full, To: Partial}:  true,
	{From: Full, To: Empty}:    true,
	{From: Partial, To: Empty}: true,
}

// DidCapacityOpen indica si pasar de old a next liberó espacio que un ítem en espera puede ocupar.
func DidCapacityOpen(old, next Status) bool {
	return capacityOpening[Transition{From: old, To: next}]
}

// Transitions devuelve la tabla completa (16 pares) con su resultado.
func Transitions() map[Transition]bool {
	all := []Status{Empty, Partial, Full, ReservedForProduction}
	out := make(map[Transition]bool, len(all)*len(all))
	for _, from := range all {
		for _, to := range all {
			t := Transition{From: from, To: to}
			out[t] = capacityOpening[t]
		}
	}
	return out
}
