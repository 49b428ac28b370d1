package crm_test

import (
	"context"
	"strings"

	"github.com/agroventas/crm-api/internal/domain"
	"github.com/agroventas/crm-api/internal/domain/entity"
	"github.com/agroventas/crm-api/internal/domain/repository"
)

// fakeCustomerRepo implementación en memoria de repository.CustomerRepository.
type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
	refs      map[string]entity.CustomerRefs
	failOn    string // nombre de cliente cuyo Create falla (simula error de DB)
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{
		customers: map[string]*entity.Customer{},
		refs:      map[string]entity.CustomerRefs{},
	}
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	if r.failOn != "" && c.Name == r.failOn {
		return domain.ErrConflict
	}
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCustomerRepo) ListByUser(userID string, limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.customers {
		if c.CreatedBy == userID || c.AssignedTo == userID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) FindByEmailOrPhone(email, phone string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if email != "" && strings.EqualFold(c.Email, email) {
			return c, nil
		}
		if phone != "" && c.Phone == phone {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	if _, ok := r.customers[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) UpdateAssigned(id, assignedTo string) error {
	c, ok := r.customers[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.AssignedTo = assignedTo
	return nil
}

func (r *fakeCustomerRepo) CountRefs(id string) (entity.CustomerRefs, error) {
	return r.refs[id], nil
}

func (r *fakeCustomerRepo) Delete(id string) error {
	if r.refs[id].Total() > 0 {
		return domain.ErrCustomerInUse
	}
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) snapshot() map[string]*entity.Customer {
	snap := make(map[string]*entity.Customer, len(r.customers))
	for k, v := range r.customers {
		cp := *v
		snap[k] = &cp
	}
	return snap
}

// fakeImportRunner simula la transacción del import: si fn falla, restaura el
// estado previo del repo (rollback).
type fakeImportRunner struct {
	repo *fakeCustomerRepo
}

func (r *fakeImportRunner) RunImport(ctx context.Context, fn func(customerRepo repository.CustomerRepository) error) error {
	snap := r.repo.snapshot()
	if err := fn(r.repo); err != nil {
		r.repo.customers = snap
		return err
	}
	return nil
}
