package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/agroventas/crm-api/internal/domain/entity"
	"github.com/agroventas/crm-api/internal/domain/repository"
)

var _ repository.AgendaRepository = (*AgendaRepo)(nil)

// AgendaRepo implementación de AgendaRepository (usable con pool o tx).
type AgendaRepo struct {
	q Querier
}

// NewAgendaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAgendaRepository(q Querier) *AgendaRepo {
	return &AgendaRepo{q: q}
}

const agendaColumns = `id, user_id, title, description, scheduled_at, status, created_at, updated_at`

// Create persiste un nuevo ítem de agenda.
func (r *AgendaRepo) Create(a *entity.AgendaItem) error {
	query := `
		INSERT INTO agenda_items (` + agendaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.UserID, a.Title, a.Description, a.ScheduledAt, a.Status,
		a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert agenda item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID.
func (r *AgendaRepo) GetByID(id string) (*entity.AgendaItem, error) {
	query := `SELECT ` + agendaColumns + ` FROM agenda_items WHERE id = $1`
	var a entity.AgendaItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.UserID, &a.Title, &a.Description, &a.ScheduledAt, &a.Status,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get agenda item: %w", err)
	}
	return &a, nil
}

// List lista todos los ítems (roles privilegiados).
func (r *AgendaRepo) List(limit, offset int) ([]*entity.AgendaItem, error) {
	query := `
		SELECT ` + agendaColumns + ` FROM agenda_items
		ORDER BY scheduled_at NULLS LAST, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list agenda items: %w", err)
	}
	return r.scanAll(rows)
}

// ListByUser lista los ítems del usuario.
func (r *AgendaRepo) ListByUser(userID string, limit, offset int) ([]*entity.AgendaItem, error) {
	query := `
		SELECT ` + agendaColumns + ` FROM agenda_items WHERE user_id = $1
		ORDER BY scheduled_at NULLS LAST, created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list agenda items by user: %w", err)
	}
	return r.scanAll(rows)
}

// Update actualiza un ítem. El dueño (user_id) no cambia.
func (r *AgendaRepo) Update(a *entity.AgendaItem) error {
	query := `
		UPDATE agenda_items
		SET title = $2, description = $3, scheduled_at = $4, status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.Title, a.Description, a.ScheduledAt, a.Status, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update agenda item: %w", err)
	}
	return nil
}

// Delete elimina un ítem por ID.
func (r *AgendaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM agenda_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete agenda item: %w", err)
	}
	return nil
}

func (r *AgendaRepo) scanAll(rows pgx.Rows) ([]*entity.AgendaItem, error) {
	defer rows.Close()
	var list []*entity.AgendaItem
	for rows.Next() {
		var a entity.AgendaItem
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Title, &a.Description, &a.ScheduledAt, &a.Status,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan agenda item: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
