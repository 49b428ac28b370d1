package sales_test

import (
	"context"
	"errors"

	"github.com/agroventas/crm-api/internal/domain"
	"github.com/agroventas/crm-api/internal/domain/entity"
	"github.com/agroventas/crm-api/internal/domain/repository"
)

var errDBSimulado = errors.New("fallo simulado de base de datos")

type fakeSaleRepo struct {
	sales map[string]*entity.SaleRecord
	// noSetNote simula un despliegue viejo: el repo real traduce la columna
	// inexistente a nil sin persistir el enlace. failSetNote simula un fallo
	// genuino de base de datos al enlazar.
	noSetNote   bool
	failSetNote bool
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: map[string]*entity.SaleRecord{}}
}

func (r *fakeSaleRepo) Create(s *entity.SaleRecord) error {
	cp := *s
	r.sales[s.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.SaleRecord, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSaleRepo) List(limit, offset int) ([]*entity.SaleRecord, error) {
	out := make([]*entity.SaleRecord, 0, len(r.sales))
	for _, s := range r.sales {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSaleRepo) SetNoteID(saleID, noteID string) error {
	if r.failSetNote {
		return errDBSimulado
	}
	if r.noSetNote {
		return nil // el repo real traduce columna inexistente a nil
	}
	s, ok := r.sales[saleID]
	if !ok {
		return domain.ErrNotFound
	}
	s.NoteID = noteID
	return nil
}

func (r *fakeSaleRepo) Delete(id string) error {
	delete(r.sales, id)
	return nil
}

type fakeNoteRepo struct {
	notes      map[string]*entity.CustomerNote
	seq        int
	failCreate bool
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: map[string]*entity.CustomerNote{}}
}

func (r *fakeNoteRepo) Create(n *entity.CustomerNote) error {
	if r.failCreate {
		return errDBSimulado
	}
	r.seq++
	cp := *n
	r.notes[n.ID] = &cp
	return nil
}

func (r *fakeNoteRepo) GetByID(id string) (*entity.CustomerNote, error) {
	n, ok := r.notes[id]
	if !ok {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (r *fakeNoteRepo) ListByCustomer(customerID string, limit, offset int) ([]*entity.CustomerNote, error) {
	var out []*entity.CustomerNote
	for _, n := range r.notes {
		if n.CustomerID == customerID {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeNoteRepo) ListRecent(limit int) ([]*entity.CustomerNote, error) {
	return nil, nil
}

func (r *fakeNoteRepo) LatestSaleNote(customerID string) (*entity.CustomerNote, error) {
	var latest *entity.CustomerNote
	for _, n := range r.notes {
		if n.CustomerID != customerID || n.ActionType != entity.ActionSale {
			continue
		}
		if latest == nil || n.CreatedAt.After(latest.CreatedAt) {
			latest = n
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (r *fakeNoteRepo) Delete(id string) error {
	delete(r.notes, id)
	return nil
}

type fakeUnitRepo struct {
	units map[string]*entity.SoldUnit
}

func newFakeUnitRepo() *fakeUnitRepo {
	return &fakeUnitRepo{units: map[string]*entity.SoldUnit{}}
}

func (r *fakeUnitRepo) Create(u *entity.SoldUnit) error {
	cp := *u
	r.units[u.ID] = &cp
	return nil
}

func (r *fakeUnitRepo) GetByID(id string) (*entity.SoldUnit, error) {
	u, ok := r.units[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUnitRepo) ListByCustomer(customerID string) ([]*entity.SoldUnit, error) {
	return nil, nil
}

func (r *fakeUnitRepo) ListByPOS(posID string) ([]*entity.SoldUnit, error) {
	return nil, nil
}

func (r *fakeUnitRepo) Update(u *entity.SoldUnit) error {
	cp := *u
	r.units[u.ID] = &cp
	return nil
}

func (r *fakeUnitRepo) UpdateStatus(id, status string) error {
	u, ok := r.units[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.Status = status
	return nil
}

func (r *fakeUnitRepo) Delete(id string) error {
	delete(r.units, id)
	return nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[string]*entity.Customer{}}
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
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

func (r *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) { return nil, nil }
func (r *fakeCustomerRepo) ListByUser(userID string, limit, offset int) ([]*entity.Customer, error) {
	return nil, nil
}
func (r *fakeCustomerRepo) FindByEmailOrPhone(email, phone string) (*entity.Customer, error) {
	return nil, nil
}
func (r *fakeCustomerRepo) Update(c *entity.Customer) error            { return nil }
func (r *fakeCustomerRepo) UpdateAssigned(id, assignedTo string) error { return nil }
func (r *fakeCustomerRepo) CountRefs(id string) (entity.CustomerRefs, error) {
	return entity.CustomerRefs{}, nil
}
func (r *fakeCustomerRepo) Delete(id string) error { return nil }

// fakeTxRunner simula la transacción de venta: si fn falla, restaura el
// estado previo de ventas, notas y unidades (rollback).
type fakeTxRunner struct {
	saleRepo     *fakeSaleRepo
	noteRepo     *fakeNoteRepo
	unitRepo     *fakeUnitRepo
	customerRepo *fakeCustomerRepo
}

func (r *fakeTxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	noteRepo repository.CustomerNoteRepository,
	unitRepo repository.SoldUnitRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	salesSnap := snapshotMap(r.saleRepo.sales)
	notesSnap := snapshotMap(r.noteRepo.notes)
	unitsSnap := snapshotMap(r.unitRepo.units)

	if err := fn(r.saleRepo, r.noteRepo, r.unitRepo, r.customerRepo); err != nil {
		r.saleRepo.sales = salesSnap
		r.noteRepo.notes = notesSnap
		r.unitRepo.units = unitsSnap
		return err
	}
	return nil
}

func snapshotMap[T any](m map[string]*T) map[string]*T {
	snap := make(map[string]*T, len(m))
	for k, v := range m {
		cp := *v
		snap[k] = &cp
	}
	return snap
}
