package repository

import "github.com/agroventas/crm-api/internal/domain/entity"

// CustomerNoteRepository puerto de persistencia para notas de actividad.
type CustomerNoteRepository interface {
	Create(note *entity.CustomerNote) error
	GetByID(id string) (*entity.CustomerNote, error)
	ListByCustomer(customerID string, limit, offset int) ([]*entity.CustomerNote, error)
	// ListRecent feed de actividad global, más recientes primero.
	ListRecent(limit int) ([]*entity.CustomerNote, error)
	// LatestSaleNote nota SALE más reciente del cliente; nil si no hay.
	// Fallback al borrar ventas legadas sin note_id.
	LatestSaleNote(customerID string) (*entity.CustomerNote, error)
	Delete(id string) error
}
