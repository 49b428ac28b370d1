package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agroventas/crm-api/internal/application/crm"
	"github.com/agroventas/crm-api/internal/application/sales"
	"github.com/agroventas/crm-api/internal/domain/repository"
)

// Ensure TxRunner implements sales.TxRunner and crm.ImportTxRunner.
var _ sales.TxRunner = (*TxRunner)(nil)
var _ crm.ImportTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSale inicia una transacción con los repos que participan del flujo de
// venta (alta y baja) y hace Commit o Rollback según el resultado de fn.
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	noteRepo repository.CustomerNoteRepository,
	unitRepo repository.SoldUnitRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	saleRepo := NewSaleRepository(tx)
	noteRepo := NewCustomerNoteRepository(tx)
	unitRepo := NewSoldUnitRepository(tx)
	customerRepo := NewCustomerRepository(tx)

	if err := fn(saleRepo, noteRepo, unitRepo, customerRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunImport inicia una transacción para el import masivo de clientes.
// El repo atado a la tx ve las filas insertadas antes en el mismo batch,
// que es lo que permite deduplicar dentro del propio archivo.
func (r *TxRunner) RunImport(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewCustomerRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
