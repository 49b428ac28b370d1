package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agroventas/crm-api/internal/domain"
	"github.com/agroventas/crm-api/internal/domain/entity"
	"github.com/agroventas/crm-api/internal/domain/repository"
)

var _ repository.POSRepository = (*POSRepo)(nil)

// POSRepo implementación de POSRepository (usable con pool o tx).
// Misma forma que CustomerRepo pero sobre la tabla pos.
type POSRepo struct {
	q Querier
}

// NewPOSRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPOSRepository(q Querier) *POSRepo {
	return &POSRepo{q: q}
}

const posColumns = `id, name, company, phone, email, localidad, sector, type, assigned_to, created_by, created_at, updated_at`

// Create persiste un nuevo punto de venta.
func (r *POSRepo) Create(p *entity.PointOfSale) error {
	query := `
		INSERT INTO pos (` + posColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Company, p.Phone, p.Email, p.Localidad, p.Sector, p.Type,
		p.AssignedTo, p.CreatedBy, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert pos: %w", err)
	}
	return nil
}

// GetByID obtiene un punto de venta por ID.
func (r *POSRepo) GetByID(id string) (*entity.PointOfSale, error) {
	query := `SELECT ` + posColumns + ` FROM pos WHERE id = $1`
	var p entity.PointOfSale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Company, &p.Phone, &p.Email, &p.Localidad, &p.Sector,
		&p.Type, &p.AssignedTo, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pos: %w", err)
	}
	return &p, nil
}

// List lista todos los puntos de venta con paginación.
func (r *POSRepo) List(limit, offset int) ([]*entity.PointOfSale, error) {
	query := `SELECT ` + posColumns + ` FROM pos ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pos: %w", err)
	}
	return r.scanAll(rows)
}

// ListByUser lista los puntos de venta creados por o asignados a userID.
func (r *POSRepo) ListByUser(userID string, limit, offset int) ([]*entity.PointOfSale, error) {
	query := `
		SELECT ` + posColumns + ` FROM pos
		WHERE created_by = $1 OR assigned_to = $1
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pos by user: %w", err)
	}
	return r.scanAll(rows)
}

// Update actualiza los campos editables. created_by es inmutable.
func (r *POSRepo) Update(p *entity.PointOfSale) error {
	query := `
		UPDATE pos
		SET name = $2, company = $3, phone = $4, email = $5, localidad = $6,
		    sector = $7, assigned_to = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Company, p.Phone, p.Email, p.Localidad, p.Sector,
		p.AssignedTo, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update pos: %w", err)
	}
	return nil
}

// Delete elimina un punto de venta por ID.
func (r *POSRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM pos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete pos: %w", err)
	}
	return nil
}

func (r *POSRepo) scanAll(rows pgx.Rows) ([]*entity.PointOfSale, error) {
	defer rows.Close()
	var list []*entity.PointOfSale
	for rows.Next() {
		var p entity.PointOfSale
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Company, &p.Phone, &p.Email, &p.Localidad, &p.Sector,
			&p.Type, &p.AssignedTo, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan pos: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
