package repository

import "github.com/agroventas/crm-api/internal/domain/entity"

// AgendaRepository puerto de persistencia para ítems de agenda.
type AgendaRepository interface {
	Create(item *entity.AgendaItem) error
	GetByID(id string) (*entity.AgendaItem, error)
	List(limit, offset int) ([]*entity.AgendaItem, error)
	ListByUser(userID string, limit, offset int) ([]*entity.AgendaItem, error)
	Update(item *entity.AgendaItem) error
	Delete(id string) error
}
