package crm

import (
	"context"

	"github.com/agroventas/crm-api/internal/domain/repository"
)

// ImportTxRunner ejecuta el batch de import dentro de una única transacción.
// El repo que recibe fn está atado a la tx: los SELECT de dedupe ven las
// filas insertadas antes en el mismo batch.
type ImportTxRunner interface {
	RunImport(ctx context.Context, fn func(customerRepo repository.CustomerRepository) error) error
}
