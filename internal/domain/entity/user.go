package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleGerente  = "gerente"
	RoleOperador = "operador"
)

// ManagerRoles roles autorizados a reservar o liberar columnas para producción.
var ManagerRoles = []string{RoleAdmin, RoleGerente}

// User representa un usuario del almacén.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash
	Name         string
	Role         string // admin, gerente, operador
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
