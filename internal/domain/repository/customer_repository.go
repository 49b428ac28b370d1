package repository

import "github.com/agroventas/crm-api/internal/domain/entity"

// CustomerRepository puerto de persistencia para clientes.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
	// ListByUser devuelve solo los clientes creados por o asignados a userID.
	ListByUser(userID string, limit, offset int) ([]*entity.Customer, error)
	// FindByEmailOrPhone busca un cliente con el mismo email o teléfono no
	// vacíos. Clave de dedupe del import masivo.
	FindByEmailOrPhone(email, phone string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	UpdateAssigned(id, assignedTo string) error
	// CountRefs cuenta ventas, unidades y notas que referencian al cliente.
	CountRefs(id string) (entity.CustomerRefs, error)
	Delete(id string) error
}
