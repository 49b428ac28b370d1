package crm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroventas/crm-api/internal/application/crm"
	"github.com/agroventas/crm-api/internal/application/dto"
	"github.com/agroventas/crm-api/internal/domain"
	"github.com/agroventas/crm-api/internal/domain/authz"
	"github.com/agroventas/crm-api/internal/domain/entity"
)

// fakeAgendaRepo implementación en memoria de repository.AgendaRepository.
type fakeAgendaRepo struct {
	items map[string]*entity.AgendaItem
}

func newFakeAgendaRepo() *fakeAgendaRepo {
	return &fakeAgendaRepo{items: map[string]*entity.AgendaItem{}}
}

func (r *fakeAgendaRepo) Create(a *entity.AgendaItem) error {
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *fakeAgendaRepo) GetByID(id string) (*entity.AgendaItem, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAgendaRepo) List(limit, offset int) ([]*entity.AgendaItem, error) {
	out := make([]*entity.AgendaItem, 0, len(r.items))
	for _, a := range r.items {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeAgendaRepo) ListByUser(userID string, limit, offset int) ([]*entity.AgendaItem, error) {
	var out []*entity.AgendaItem
	for _, a := range r.items {
		if a.UserID == userID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeAgendaRepo) Update(a *entity.AgendaItem) error {
	if _, ok := r.items[a.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *fakeAgendaRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func newAgendaUC(repo *fakeAgendaRepo) *crm.AgendaUseCase {
	return crm.NewAgendaUseCase(repo, authz.New())
}

func TestAgendaCreate_EstadoPorDefectoPendiente(t *testing.T) {
	uc := newAgendaUC(newFakeAgendaRepo())

	out, err := uc.Create(owner(), dto.CreateAgendaRequest{Title: "Llamar a Juan"})
	require.NoError(t, err)

	assert.Equal(t, entity.AgendaPendiente, out.Status)
	assert.Equal(t, ownerID, out.UserID)
}

func TestAgendaList_EmpleadoSoloVeLoPropio(t *testing.T) {
	repo := newFakeAgendaRepo()
	uc := newAgendaUC(repo)

	_, err := uc.Create(owner(), dto.CreateAgendaRequest{Title: "Mía"})
	require.NoError(t, err)
	_, err = uc.Create(stranger(), dto.CreateAgendaRequest{Title: "De otro"})
	require.NoError(t, err)

	mine, err := uc.List(owner(), dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Mía", mine[0].Title)

	all, err := uc.List(admin(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

// El empleado que ni creó ni tiene asignado el ítem no puede tocarlo y el
// ítem queda sin cambios.
func TestAgendaUpdate_AjenoRechazadoYSinCambios(t *testing.T) {
	repo := newFakeAgendaRepo()
	uc := newAgendaUC(repo)

	created, err := uc.Create(owner(), dto.CreateAgendaRequest{Title: "Visitar La Loma"})
	require.NoError(t, err)

	_, err = uc.Update(stranger(), created.ID, dto.UpdateAgendaRequest{
		Title:  "Cambiado",
		Status: entity.AgendaFinalizado,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	intact, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Visitar La Loma", intact.Title)
	assert.Equal(t, entity.AgendaPendiente, intact.Status)
}

func TestAgendaDelete_AjenoRechazado(t *testing.T) {
	repo := newFakeAgendaRepo()
	uc := newAgendaUC(repo)

	created, err := uc.Create(owner(), dto.CreateAgendaRequest{Title: "Visitar La Loma"})
	require.NoError(t, err)

	err = uc.Delete(stranger(), created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Len(t, repo.items, 1)
}

func TestAgendaUpdate_PrivilegiadoPuedeTodo(t *testing.T) {
	repo := newFakeAgendaRepo()
	uc := newAgendaUC(repo)

	created, err := uc.Create(owner(), dto.CreateAgendaRequest{Title: "Visitar La Loma"})
	require.NoError(t, err)

	out, err := uc.Update(admin(), created.ID, dto.UpdateAgendaRequest{
		Title:  "Reprogramada",
		Status: entity.AgendaEnProgreso,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AgendaEnProgreso, out.Status)
}
