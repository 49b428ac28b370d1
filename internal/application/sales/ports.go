package sales

import (
	"context"

	"github.com/agroventas/crm-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con los repos que
// participan del flujo de venta. Si fn retorna error, el caller revierte.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		noteRepo repository.CustomerNoteRepository,
		unitRepo repository.SoldUnitRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}
