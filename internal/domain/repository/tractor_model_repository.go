package repository

import "github.com/agroventas/crm-api/internal/domain/entity"

// TractorModelRepository catálogo estático de equipos, solo lectura.
type TractorModelRepository interface {
	List() ([]*entity.TractorModel, error)
}
