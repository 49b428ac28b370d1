package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// Alias legados que todavía llegan desde instalaciones viejas del frontend.
// Se normalizan en el borde de auth; nunca se persisten.
const (
	RoleAliasJefe     = "jefe"     // -> manager
	RoleAliasEmpleado = "empleado" // -> employee
)

// NormalizeRole traduce los alias legados al rol canónico.
// Un rol desconocido se devuelve tal cual; la validación lo rechaza después.
func NormalizeRole(role string) string {
	switch role {
	case RoleAliasJefe:
		return RoleManager
	case RoleAliasEmpleado:
		return RoleEmployee
	default:
		return role
	}
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, manager, employee
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
