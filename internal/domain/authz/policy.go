// Package authz concentra la política de autorización del CRM.
// Antes las comparaciones de rol estaban repartidas por los handlers; aquí se
// consolidan en un único objeto con dos predicados.
package authz

import "github.com/agroventas/crm-api/internal/domain/entity"

// Policy decide capacidades a partir del rol y la identidad del llamador.
type Policy struct{}

// New construye la política.
func New() Policy {
	return Policy{}
}

// IsPrivileged indica si el rol pertenece al conjunto elevado (exento de
// verificaciones de propiedad).
func (Policy) IsPrivileged(role string) bool {
	switch entity.NormalizeRole(role) {
	case entity.RoleAdmin, entity.RoleManager:
		return true
	}
	return false
}

// OwnsOrAssigned indica si userID coincide con el creador o el asignado del
// registro. Los campos vacíos nunca coinciden.
func (Policy) OwnsOrAssigned(userID, createdBy, assignedTo string) bool {
	if userID == "" {
		return false
	}
	return userID == createdBy || userID == assignedTo
}

// CanManage combinación habitual: escribir sobre un registro exige rol
// privilegiado o propiedad/asignación.
func (p Policy) CanManage(userID, role, createdBy, assignedTo string) bool {
	return p.IsPrivileged(role) || p.OwnsOrAssigned(userID, createdBy, assignedTo)
}
