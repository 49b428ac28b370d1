package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agroventas/crm-api/internal/domain/entity"
	"github.com/agroventas/crm-api/internal/domain/repository"
)

var _ repository.CustomerNoteRepository = (*CustomerNoteRepo)(nil)

// CustomerNoteRepo implementación de CustomerNoteRepository (usable con pool o tx).
type CustomerNoteRepo struct {
	q Querier
}

// NewCustomerNoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerNoteRepository(q Querier) *CustomerNoteRepo {
	return &CustomerNoteRepo{q: q}
}

const noteColumns = `id, customer_id, user_id, texto, fecha_visita, proximos_pasos, latitude, longitude, action_type, created_at`

// Create persiste una nueva nota de actividad.
func (r *CustomerNoteRepo) Create(n *entity.CustomerNote) error {
	query := `
		INSERT INTO customer_notes (` + noteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		n.ID, n.CustomerID, n.UserID, n.Texto, n.FechaVisita, n.ProximosPasos,
		n.Latitude, n.Longitude, n.ActionType, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer note: %w", err)
	}
	return nil
}

// GetByID obtiene una nota por ID.
func (r *CustomerNoteRepo) GetByID(id string) (*entity.CustomerNote, error) {
	query := `SELECT ` + noteColumns + ` FROM customer_notes WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// ListByCustomer lista las notas de un cliente, más recientes primero.
func (r *CustomerNoteRepo) ListByCustomer(customerID string, limit, offset int) ([]*entity.CustomerNote, error) {
	query := `
		SELECT ` + noteColumns + ` FROM customer_notes
		WHERE customer_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, customerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customer notes: %w", err)
	}
	return r.scanAll(rows)
}

// ListRecent feed de actividad global, más recientes primero.
func (r *CustomerNoteRepo) ListRecent(limit int) ([]*entity.CustomerNote, error) {
	query := `SELECT ` + noteColumns + ` FROM customer_notes ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent notes: %w", err)
	}
	return r.scanAll(rows)
}

// LatestSaleNote nota SALE más reciente del cliente; nil si no hay.
func (r *CustomerNoteRepo) LatestSaleNote(customerID string) (*entity.CustomerNote, error) {
	query := `
		SELECT ` + noteColumns + ` FROM customer_notes
		WHERE customer_id = $1 AND action_type = $2
		ORDER BY created_at DESC LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, customerID, entity.ActionSale))
}

// Delete elimina una nota por ID.
func (r *CustomerNoteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customer_notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer note: %w", err)
	}
	return nil
}

func (r *CustomerNoteRepo) scanOne(row pgx.Row) (*entity.CustomerNote, error) {
	var n entity.CustomerNote
	err := row.Scan(
		&n.ID, &n.CustomerID, &n.UserID, &n.Texto, &n.FechaVisita, &n.ProximosPasos,
		&n.Latitude, &n.Longitude, &n.ActionType, &n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer note: %w", err)
	}
	return &n, nil
}

func (r *CustomerNoteRepo) scanAll(rows pgx.Rows) ([]*entity.CustomerNote, error) {
	defer rows.Close()
	var list []*entity.CustomerNote
	for rows.Next() {
		var n entity.CustomerNote
		if err := rows.Scan(
			&n.ID, &n.CustomerID, &n.UserID, &n.Texto, &n.FechaVisita, &n.ProximosPasos,
			&n.Latitude, &n.Longitude, &n.ActionType, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan customer note: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}
