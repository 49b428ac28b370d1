package repository

import "github.com/agroventas/crm-api/internal/domain/entity"

// POSRepository puerto de persistencia para puntos de venta.
type POSRepository interface {
	Create(pos *entity.PointOfSale) error
	GetByID(id string) (*entity.PointOfSale, error)
	List(limit, offset int) ([]*entity.PointOfSale, error)
	ListByUser(userID string, limit, offset int) ([]*entity.PointOfSale, error)
	Update(pos *entity.PointOfSale) error
	Delete(id string) error
}
