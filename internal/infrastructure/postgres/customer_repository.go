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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, name, company, phone, email, localidad, sector, type, assigned_to, created_by, created_at, updated_at`

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(c *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Company, c.Phone, c.Email, c.Localidad, c.Sector, c.Type,
		c.AssignedTo, c.CreatedBy, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// List lista todos los clientes con paginación (roles privilegiados).
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return r.scanAll(rows)
}

// ListByUser lista los clientes creados por o asignados a userID.
func (r *CustomerRepo) ListByUser(userID string, limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + ` FROM customers
		WHERE created_by = $1 OR assigned_to = $1
		ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers by user: %w", err)
	}
	return r.scanAll(rows)
}

// FindByEmailOrPhone busca un cliente con el mismo email o teléfono no vacíos.
// Dentro de una tx ve las filas insertadas antes en el mismo batch.
func (r *CustomerRepo) FindByEmailOrPhone(email, phone string) (*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + ` FROM customers
		WHERE ($1 <> '' AND email = $1) OR ($2 <> '' AND phone = $2)
		LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, email, phone))
}

// Update actualiza los campos editables del cliente. created_by es inmutable.
func (r *CustomerRepo) Update(c *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, company = $3, phone = $4, email = $5, localidad = $6,
		    sector = $7, assigned_to = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Name, c.Company, c.Phone, c.Email, c.Localidad, c.Sector,
		c.AssignedTo, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// UpdateAssigned reasigna el cliente a otro usuario.
func (r *CustomerRepo) UpdateAssigned(id, assignedTo string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE customers SET assigned_to = $2, updated_at = NOW() WHERE id = $1`,
		id, assignedTo,
	)
	if err != nil {
		return fmt.Errorf("assign customer: %w", err)
	}
	return nil
}

// CountRefs cuenta ventas, unidades y notas que referencian al cliente.
func (r *CustomerRepo) CountRefs(id string) (entity.CustomerRefs, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM sales_records  WHERE customer_id = $1),
			(SELECT COUNT(*) FROM sold_units     WHERE customer_id = $1),
			(SELECT COUNT(*) FROM customer_notes WHERE customer_id = $1)`
	var refs entity.CustomerRefs
	err := r.q.QueryRow(context.Background(), query, id).Scan(&refs.Sales, &refs.Units, &refs.Notes)
	if err != nil {
		return entity.CustomerRefs{}, fmt.Errorf("count customer refs: %w", err)
	}
	return refs, nil
}

// Delete elimina un cliente por ID. La constraint FK respalda el pre-chequeo
// de CountRefs ante carreras.
func (r *CustomerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCustomerInUse
		}
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) scanOne(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.Name, &c.Company, &c.Phone, &c.Email, &c.Localidad, &c.Sector,
		&c.Type, &c.AssignedTo, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepo) scanAll(rows pgx.Rows) ([]*entity.Customer, error) {
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Company, &c.Phone, &c.Email, &c.Localidad, &c.Sector,
			&c.Type, &c.AssignedTo, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
