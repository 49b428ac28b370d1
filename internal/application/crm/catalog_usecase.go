package crm

import (
	"github.com/agroventas/crm-api/internal/application/dto"
	"github.com/agroventas/crm-api/internal/domain/repository"
)

// CatalogUseCase catálogo de modelos de equipos, solo lectura.
type CatalogUseCase struct {
	repo repository.TractorModelRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.TractorModelRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// List devuelve el catálogo completo.
func (uc *CatalogUseCase) List() ([]*dto.CatalogModelDTO, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CatalogModelDTO, 0, len(list))
	for _, m := range list {
		out = append(out, &dto.CatalogModelDTO{ID: m.ID, Brand: m.Brand, Model: m.Model, HP: m.HP})
	}
	return out, nil
}
