package postgres

import (
	"context"
	"fmt"

	"github.com/agroventas/crm-api/internal/domain/entity"
	"github.com/agroventas/crm-api/internal/domain/repository"
)

var _ repository.TractorModelRepository = (*TractorModelRepo)(nil)

// TractorModelRepo catálogo estático de equipos, solo lectura.
type TractorModelRepo struct {
	q Querier
}

// NewTractorModelRepository construye el adaptador.
func NewTractorModelRepository(q Querier) *TractorModelRepo {
	return &TractorModelRepo{q: q}
}

// List devuelve el catálogo completo ordenado por marca y modelo.
func (r *TractorModelRepo) List() ([]*entity.TractorModel, error) {
	query := `SELECT id, brand, model, hp FROM tractor_models ORDER BY brand, model`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list tractor models: %w", err)
	}
	defer rows.Close()
	var list []*entity.TractorModel
	for rows.Next() {
		var m entity.TractorModel
		if err := rows.Scan(&m.ID, &m.Brand, &m.Model, &m.HP); err != nil {
			return nil, fmt.Errorf("scan tractor model: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
