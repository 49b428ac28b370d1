package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroventas/crm-api/internal/application/crm"
	"github.com/agroventas/crm-api/internal/domain"
	"github.com/agroventas/crm-api/internal/domain/authz"
	"github.com/agroventas/crm-api/internal/domain/entity"
	apphttp "github.com/agroventas/crm-api/internal/interfaces/http"
)

// fakePOSRepo repositorio en memoria para el handler de puntos de venta.
// conUnidades simula la violación de clave foránea al borrar.
type fakePOSRepo struct {
	byID        map[string]*entity.PointOfSale
	conUnidades map[string]bool
}

func newFakePOSRepo() *fakePOSRepo {
	return &fakePOSRepo{
		byID:        make(map[string]*entity.PointOfSale),
		conUnidades: make(map[string]bool),
	}
}

func (r *fakePOSRepo) Create(p *entity.PointOfSale) error { r.byID[p.ID] = p; return nil }

func (r *fakePOSRepo) GetByID(id string) (*entity.PointOfSale, error) {
	return r.byID[id], nil
}

func (r *fakePOSRepo) List(limit, offset int) ([]*entity.PointOfSale, error) { return nil, nil }

func (r *fakePOSRepo) ListByUser(userID string, limit, offset int) ([]*entity.PointOfSale, error) {
	return nil, nil
}

func (r *fakePOSRepo) Update(p *entity.PointOfSale) error { return nil }

func (r *fakePOSRepo) Delete(id string) error {
	if r.conUnidades[id] {
		return domain.ErrConflict
	}
	delete(r.byID, id)
	return nil
}

// buildPOSApp monta el handler real sobre el repositorio falso, con la
// identidad del llamador fijada en locals (sin pasar por el JWT).
func buildPOSApp(repo *fakePOSRepo) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(apphttp.LocalUserID, testUserID)
		c.Locals(apphttp.LocalRole, entity.RoleAdmin)
		return c.Next()
	})
	h := apphttp.NewPOSHandler(crm.NewPOSUseCase(repo, authz.New()))
	app.Delete("/pos/:id", h.Delete)
	return app
}

func seedPOS(repo *fakePOSRepo, id string) {
	now := time.Now()
	repo.byID[id] = &entity.PointOfSale{
		ID:         id,
		Name:       "Sucursal Norte",
		Type:       entity.TypePOS,
		AssignedTo: testUserID,
		CreatedBy:  testUserID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// TestPOSDelete_ConUnidadesDevuelve409 un punto de venta con unidades
// asociadas no se puede borrar: la violación de integridad referencial debe
// traducirse a 409, no a un error genérico.
func TestPOSDelete_ConUnidadesDevuelve409(t *testing.T) {
	repo := newFakePOSRepo()
	seedPOS(repo, "pos-1")
	repo.conUnidades["pos-1"] = true
	app := buildPOSApp(repo)

	req := httptest.NewRequest(http.MethodDelete, "/pos/pos-1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	// El punto de venta sigue existiendo
	assert.NotNil(t, repo.byID["pos-1"])
}

// TestPOSDelete_SinReferenciasDevuelve204 el caso feliz sigue funcionando.
func TestPOSDelete_SinReferenciasDevuelve204(t *testing.T) {
	repo := newFakePOSRepo()
	seedPOS(repo, "pos-2")
	app := buildPOSApp(repo)

	req := httptest.NewRequest(http.MethodDelete, "/pos/pos-2", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Nil(t, repo.byID["pos-2"])
}

// TestPOSDelete_NoExistenteDevuelve404 borrar un ID inexistente es 404.
func TestPOSDelete_NoExistenteDevuelve404(t *testing.T) {
	repo := newFakePOSRepo()
	app := buildPOSApp(repo)

	req := httptest.NewRequest(http.MethodDelete, "/pos/no-existe", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
