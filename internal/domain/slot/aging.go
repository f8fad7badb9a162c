package slot

import "time"

// BasePriority es la prioridad de un ítem recién enviado a la gordura.
const BasePriority = 10

// DaysWaiting devuelve los días completos transcurridos desde storedAt (nunca negativo).
func DaysWaiting(storedAt, now time.Time) int {
	if !now.After(storedAt) {
		return 0
	}
	return int(now.Sub(storedAt) / (24 * time.Hour))
}

// Priority crece con la espera: un ítem guardado antes nunca tiene menor prioridad
// que uno guardado después, para el mismo now.
func Priority(storedAt, now time.Time) int {
	return BasePriority + DaysWaiting(storedAt, now)
}
