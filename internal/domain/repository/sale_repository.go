package repository

import "github.com/agroventas/crm-api/internal/domain/entity"

// SaleRepository puerto de persistencia para registros de venta.
type SaleRepository interface {
	Create(sale *entity.SaleRecord) error
	GetByID(id string) (*entity.SaleRecord, error)
	List(limit, offset int) ([]*entity.SaleRecord, error)
	// SetNoteID enlaza la nota sintetizada con la venta. Best-effort: si la
	// columna no existe en un despliegue viejo el caller ignora el error.
	SetNoteID(saleID, noteID string) error
	Delete(id string) error
}
