package entity

import "time"

// Tipos de acción de una nota de cliente.
const (
	ActionCall  = "CALL"
	ActionVisit = "VISIT"
	ActionNote  = "NOTE"
	ActionSale  = "SALE"
)

// CustomerNote registro de actividad sobre un cliente, atribuido al usuario
// que la realizó. El registro de ventas sintetiza una de tipo SALE.
type CustomerNote struct {
	ID            string
	CustomerID    string
	UserID        string
	Texto         string
	FechaVisita   *time.Time
	ProximosPasos string
	Latitude      *float64
	Longitude     *float64
	ActionType    string // CALL, VISIT, NOTE, SALE
	CreatedAt     time.Time
}

// ValidActionType indica si s es un tipo de acción reconocido.
func ValidActionType(s string) bool {
	switch s {
	case ActionCall, ActionVisit, ActionNote, ActionSale:
		return true
	}
	return false
}
