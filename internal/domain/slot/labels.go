package slot

// Colores usados por los clientes para pintar el estado de una columna.
const (
	ColorGreen  = "green"
	ColorYellow = "yellow"
	ColorRed    = "red"
	ColorBlue   = "blue"
	ColorGray   = "gray"
)

// Label devuelve la etiqueta legible del estado.
func (s Status) Label() string {
	switch s {
	case Empty:
		return "Vacío"
	case Partial:
		return "1 caja"
	case Full:
		return "Lleno (2 cajas)"
	case ReservedForProduction:
		return "En producción"
	}
	return "Desconocido"
}

// Color devuelve el color asociado: verde disponible, amarillo stock bajo, rojo lleno, azul producción.
func (s Status) Color() string {
	switch s {
	case Empty:
		return ColorGreen
	case Partial:
		return ColorYellow
	case Full:
		return ColorRed
	case ReservedForProduction:
		return ColorBlue
	}
	return ColorGray
}

// LegendEntry describe un estado para la leyenda del cliente.
type LegendEntry struct {
	Status Status `json:"status"`
	Code   string `json:"code"`
	Label  string `json:"label"`
	Color  string `json:"color"`
}

// Legend devuelve los cuatro estados en orden de llenado.
func Legend() []LegendEntry {
	all := []Status{Empty, Partial, Full, ReservedForProduction}
	out := make([]LegendEntry, 0, len(all))
	for _, s := range all {
		out = append(out, LegendEntry{Status: s, Code: s.String(), Label: s.Label(), Color: s.Color()})
	}
	return out
}
