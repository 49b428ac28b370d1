package dto

import "time"

// CreateNoteRequest alta de nota de actividad sobre un cliente.
// ActionType por defecto NOTE si se omite; un valor fuera del conjunto se
// rechaza, no se corrige.
type CreateNoteRequest struct {
	Texto         string     `json:"texto" validate:"required,max=2000"`
	FechaVisita   *time.Time `json:"fecha_visita"`
	ProximosPasos string     `json:"proximos_pasos" validate:"max=1000"`
	Latitude      *float64   `json:"latitude" validate:"omitempty,latitude"`
	Longitude     *float64   `json:"longitude" validate:"omitempty,longitude"`
	ActionType    string     `json:"action_type" validate:"omitempty,oneof=CALL VISIT NOTE SALE"`
}

// NoteResponse representación pública de una nota.
type NoteResponse struct {
	ID            string     `json:"id"`
	CustomerID    string     `json:"customer_id"`
	UserID        string     `json:"user_id"`
	Texto         string     `json:"texto"`
	FechaVisita   *time.Time `json:"fecha_visita,omitempty"`
	ProximosPasos string     `json:"proximos_pasos,omitempty"`
	Latitude      *float64   `json:"latitude,omitempty"`
	Longitude     *float64   `json:"longitude,omitempty"`
	ActionType    string     `json:"action_type"`
	CreatedAt     time.Time  `json:"created_at"`
}
