package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agroventas/crm-api/internal/domain/entity"
	"github.com/agroventas/crm-api/internal/domain/repository"
)

var _ repository.SoldUnitRepository = (*SoldUnitRepo)(nil)

// SoldUnitRepo implementación de SoldUnitRepository (usable con pool o tx).
// customer_id y pos_id son NULL-ables y mutuamente excluyentes; en dominio se
// representan como string vacío.
type SoldUnitRepo struct {
	q Querier
}

// NewSoldUnitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSoldUnitRepository(q Querier) *SoldUnitRepo {
	return &SoldUnitRepo{q: q}
}

const unitColumns = `id, customer_id, pos_id, brand, model, year, hp, status, hours, comments, created_at, updated_at`

// Create persiste una nueva unidad.
func (r *SoldUnitRepo) Create(u *entity.SoldUnit) error {
	query := `
		INSERT INTO sold_units (` + unitColumns + `)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.CustomerID, u.POSID, u.Brand, u.Model, u.Year, u.HP,
		u.Status, u.Hours, u.Comments, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sold unit: %w", err)
	}
	return nil
}

// GetByID obtiene una unidad por ID.
func (r *SoldUnitRepo) GetByID(id string) (*entity.SoldUnit, error) {
	query := `
		SELECT id, COALESCE(customer_id, ''), COALESCE(pos_id, ''),
		       brand, model, year, hp, status, hours, comments, created_at, updated_at
		FROM sold_units WHERE id = $1`
	var u entity.SoldUnit
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.CustomerID, &u.POSID, &u.Brand, &u.Model, &u.Year, &u.HP,
		&u.Status, &u.Hours, &u.Comments, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sold unit: %w", err)
	}
	return &u, nil
}

// ListByCustomer lista las unidades de un cliente.
func (r *SoldUnitRepo) ListByCustomer(customerID string) ([]*entity.SoldUnit, error) {
	return r.list(`customer_id = $1`, customerID)
}

// ListByPOS lista las unidades de un punto de venta.
func (r *SoldUnitRepo) ListByPOS(posID string) ([]*entity.SoldUnit, error) {
	return r.list(`pos_id = $1`, posID)
}

func (r *SoldUnitRepo) list(where, arg string) ([]*entity.SoldUnit, error) {
	query := `
		SELECT id, COALESCE(customer_id, ''), COALESCE(pos_id, ''),
		       brand, model, year, hp, status, hours, comments, created_at, updated_at
		FROM sold_units WHERE ` + where + ` ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list sold units: %w", err)
	}
	defer rows.Close()
	var list []*entity.SoldUnit
	for rows.Next() {
		var u entity.SoldUnit
		if err := rows.Scan(
			&u.ID, &u.CustomerID, &u.POSID, &u.Brand, &u.Model, &u.Year, &u.HP,
			&u.Status, &u.Hours, &u.Comments, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sold unit: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables de la unidad. El dueño no cambia.
func (r *SoldUnitRepo) Update(u *entity.SoldUnit) error {
	query := `
		UPDATE sold_units
		SET brand = $2, model = $3, year = $4, hp = $5, status = $6,
		    hours = $7, comments = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Brand, u.Model, u.Year, u.HP, u.Status, u.Hours, u.Comments, u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sold unit: %w", err)
	}
	return nil
}

// UpdateStatus cambia solo el estado (flujo de venta: EN_USO -> SOLD).
func (r *SoldUnitRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sold_units SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update sold unit status: %w", err)
	}
	return nil
}

// Delete elimina una unidad por ID.
func (r *SoldUnitRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sold_units WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sold unit: %w", err)
	}
	return nil
}
