package repository

import "github.com/agroventas/crm-api/internal/domain/entity"

// SoldUnitRepository puerto de persistencia para unidades vendidas.
type SoldUnitRepository interface {
	Create(unit *entity.SoldUnit) error
	GetByID(id string) (*entity.SoldUnit, error)
	ListByCustomer(customerID string) ([]*entity.SoldUnit, error)
	ListByPOS(posID string) ([]*entity.SoldUnit, error)
	Update(unit *entity.SoldUnit) error
	UpdateStatus(id, status string) error
	Delete(id string) error
}
