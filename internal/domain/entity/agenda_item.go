package entity

import "time"

// Estados de un ítem de agenda. Libres de orden: el dueño puede pasar de uno
// a otro sin secuencia obligada.
const (
	AgendaPendiente  = "pendiente"
	AgendaEnProgreso = "en_progreso"
	AgendaFinalizado = "finalizado"
)

// AgendaItem tarea o recordatorio perteneciente a un usuario.
type AgendaItem struct {
	ID          string
	UserID      string
	Title       string
	Description string
	ScheduledAt *time.Time
	Status      string // pendiente, en_progreso, finalizado
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidAgendaStatus indica si s es un estado reconocido.
func ValidAgendaStatus(s string) bool {
	switch s {
	case AgendaPendiente, AgendaEnProgreso, AgendaFinalizado:
		return true
	}
	return false
}
