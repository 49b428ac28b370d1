package dto

import "time"

// CreateAgendaRequest alta de ítem de agenda. Status por defecto pendiente.
type CreateAgendaRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	Status      string     `json:"status" validate:"omitempty,oneof=pendiente en_progreso finalizado"`
}

// UpdateAgendaRequest modificación de ítem. El estado es libremente
// asignable por el dueño, sin orden obligado.
type UpdateAgendaRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	Status      string     `json:"status" validate:"required,oneof=pendiente en_progreso finalizado"`
}

// AgendaResponse representación pública de un ítem de agenda.
type AgendaResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
