package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agroventas/crm-api/internal/domain/entity"
	"github.com/agroventas/crm-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, customer_id, user_id, sold_unit_id, note_id, amount, currency, model, hp, notes, created_at`

// Create persiste un nuevo registro de venta.
func (r *SaleRepo) Create(s *entity.SaleRecord) error {
	query := `
		INSERT INTO sales_records (` + saleColumns + `)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.CustomerID, s.UserID, s.SoldUnitID, s.NoteID,
		s.Amount, s.Currency, s.Model, s.HP, s.Notes, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.SaleRecord, error) {
	query := `
		SELECT id, customer_id, user_id, COALESCE(sold_unit_id, ''), COALESCE(note_id, ''),
		       amount, currency, model, hp, notes, created_at
		FROM sales_records WHERE id = $1`
	var s entity.SaleRecord
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.CustomerID, &s.UserID, &s.SoldUnitID, &s.NoteID,
		&s.Amount, &s.Currency, &s.Model, &s.HP, &s.Notes, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// List historial de ventas, más recientes primero.
func (r *SaleRepo) List(limit, offset int) ([]*entity.SaleRecord, error) {
	query := `
		SELECT id, customer_id, user_id, COALESCE(sold_unit_id, ''), COALESCE(note_id, ''),
		       amount, currency, model, hp, notes, created_at
		FROM sales_records ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleRecord
	for rows.Next() {
		var s entity.SaleRecord
		if err := rows.Scan(
			&s.ID, &s.CustomerID, &s.UserID, &s.SoldUnitID, &s.NoteID,
			&s.Amount, &s.Currency, &s.Model, &s.HP, &s.Notes, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// SetNoteID enlaza la nota sintetizada con la venta. En despliegues viejos la
// columna note_id puede no existir; el caller trata ese error como no fatal.
func (r *SaleRepo) SetNoteID(saleID, noteID string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sales_records SET note_id = $2 WHERE id = $1`,
		saleID, noteID,
	)
	if err != nil {
		if isUndefinedColumn(err) {
			return nil
		}
		return fmt.Errorf("link sale note: %w", err)
	}
	return nil
}

// Delete elimina una venta por ID.
func (r *SaleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM sales_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}
