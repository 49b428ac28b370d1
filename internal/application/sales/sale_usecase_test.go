package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroventas/crm-api/internal/application/crm"
	"github.com/agroventas/crm-api/internal/application/dto"
	"github.com/agroventas/crm-api/internal/application/sales"
	"github.com/agroventas/crm-api/internal/domain"
	"github.com/agroventas/crm-api/internal/domain/authz"
	"github.com/agroventas/crm-api/internal/domain/entity"
)

const (
	sellerID   = "00000000-0000-0000-0000-000000000001"
	otherID    = "00000000-0000-0000-0000-000000000002"
	customerID = "00000000-0000-0000-0000-000000000007"
	unitID     = "00000000-0000-0000-0000-000000000099"
)

type saleFixture struct {
	uc       *sales.SaleUseCase
	saleRepo *fakeSaleRepo
	noteRepo *fakeNoteRepo
	unitRepo *fakeUnitRepo
	custRepo *fakeCustomerRepo
}

func newSaleFixture() *saleFixture {
	saleRepo := newFakeSaleRepo()
	noteRepo := newFakeNoteRepo()
	unitRepo := newFakeUnitRepo()
	custRepo := newFakeCustomerRepo()

	custRepo.customers[customerID] = &entity.Customer{
		ID:         customerID,
		Name:       "Juan del Campo",
		Type:       entity.TypeClient,
		CreatedBy:  sellerID,
		AssignedTo: sellerID,
	}
	unitRepo.units[unitID] = &entity.SoldUnit{
		ID:         unitID,
		CustomerID: customerID,
		Brand:      "AgroMax",
		Model:      "X100",
		Status:     entity.UnitStatusEnUso,
	}

	tx := &fakeTxRunner{saleRepo: saleRepo, noteRepo: noteRepo, unitRepo: unitRepo, customerRepo: custRepo}
	uc := sales.NewSaleUseCase(tx, saleRepo, noteRepo, authz.New())
	return &saleFixture{uc: uc, saleRepo: saleRepo, noteRepo: noteRepo, unitRepo: unitRepo, custRepo: custRepo}
}

func seller() crm.Identity {
	return crm.Identity{UserID: sellerID, Role: "employee"}
}

func saleRequest() dto.RegisterSaleRequest {
	return dto.RegisterSaleRequest{
		CustomerID: customerID,
		SoldUnitID: unitID,
		Amount:     decimal.NewFromInt(1500),
		Currency:   "USD",
		Model:      "X100",
		HP:         110,
		Notes:      "entrega en 30 días",
	}
}

func TestRegister_PersisteVentaNotaYEstadoDeUnidad(t *testing.T) {
	f := newSaleFixture()

	sale, err := f.uc.Register(context.Background(), seller(), saleRequest())
	require.NoError(t, err)
	require.NotNil(t, sale)

	// Venta persistida con el monto redondeado y el vendedor atribuido.
	stored, err := f.saleRepo.GetByID(sale.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, sellerID, stored.UserID)
	assert.True(t, stored.Amount.Equal(decimal.NewFromInt(1500)))

	// Nota SALE sintetizada con monto y modelo en el texto.
	require.Len(t, f.noteRepo.notes, 1)
	var note *entity.CustomerNote
	for _, n := range f.noteRepo.notes {
		note = n
	}
	assert.Equal(t, entity.ActionSale, note.ActionType)
	assert.Equal(t, customerID, note.CustomerID)
	assert.Equal(t, sellerID, note.UserID)
	assert.Contains(t, note.Texto, "1500")
	assert.Contains(t, note.Texto, "X100")
	assert.Contains(t, note.Texto, "USD")

	// Venta y nota enlazadas.
	assert.Equal(t, note.ID, stored.NoteID)
	assert.Equal(t, note.ID, sale.NoteID)

	// La unidad quedó vendida.
	unit, err := f.unitRepo.GetByID(unitID)
	require.NoError(t, err)
	assert.Equal(t, entity.UnitStatusSold, unit.Status)
}

func TestRegister_SinUnidad_NoTocaUnidades(t *testing.T) {
	f := newSaleFixture()
	in := saleRequest()
	in.SoldUnitID = ""

	_, err := f.uc.Register(context.Background(), seller(), in)
	require.NoError(t, err)

	unit, err := f.unitRepo.GetByID(unitID)
	require.NoError(t, err)
	assert.Equal(t, entity.UnitStatusEnUso, unit.Status)
}

func TestRegister_EmpleadoAjeno_RechazadoYRevertido(t *testing.T) {
	f := newSaleFixture()

	_, err := f.uc.Register(context.Background(), crm.Identity{UserID: otherID, Role: "employee"}, saleRequest())
	assert.ErrorIs(t, err, domain.ErrForbidden)

	assert.Empty(t, f.saleRepo.sales, "la transacción debe revertirse completa")
	assert.Empty(t, f.noteRepo.notes)
}

func TestRegister_AdminPuedeVenderClienteAjeno(t *testing.T) {
	f := newSaleFixture()

	_, err := f.uc.Register(context.Background(), crm.Identity{UserID: otherID, Role: "admin"}, saleRequest())
	assert.NoError(t, err)
}

func TestRegister_FalloEnNota_RevierteLaVenta(t *testing.T) {
	f := newSaleFixture()
	f.noteRepo.failCreate = true

	_, err := f.uc.Register(context.Background(), seller(), saleRequest())
	require.Error(t, err)

	// Atomicidad: o persisten los tres efectos o ninguno.
	assert.Empty(t, f.saleRepo.sales)
	assert.Empty(t, f.noteRepo.notes)
	unit, _ := f.unitRepo.GetByID(unitID)
	assert.Equal(t, entity.UnitStatusEnUso, unit.Status)
}

func TestRegister_FalloAlEnlazarNota_RevierteTodo(t *testing.T) {
	f := newSaleFixture()
	f.saleRepo.failSetNote = true

	_, err := f.uc.Register(context.Background(), seller(), saleRequest())
	require.ErrorIs(t, err, errDBSimulado)

	// Un fallo real al enlazar no es ignorable: aborta la transacción.
	assert.Empty(t, f.saleRepo.sales)
	assert.Empty(t, f.noteRepo.notes)
	unit, _ := f.unitRepo.GetByID(unitID)
	assert.Equal(t, entity.UnitStatusEnUso, unit.Status)
}

func TestRegister_ClienteInexistente(t *testing.T) {
	f := newSaleFixture()
	in := saleRequest()
	in.CustomerID = "00000000-0000-0000-0000-0000000000ff"

	_, err := f.uc.Register(context.Background(), seller(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.saleRepo.sales)
}

func TestRegister_MontoNoPositivo(t *testing.T) {
	f := newSaleFixture()

	in := saleRequest()
	in.Amount = decimal.Zero
	_, err := f.uc.Register(context.Background(), seller(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in.Amount = decimal.NewFromInt(-10)
	_, err = f.uc.Register(context.Background(), seller(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_MonedaDesconocida(t *testing.T) {
	f := newSaleFixture()
	in := saleRequest()
	in.Currency = "EUR"

	_, err := f.uc.Register(context.Background(), seller(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_RedondeaADosDecimales(t *testing.T) {
	f := newSaleFixture()
	in := saleRequest()
	in.Amount = decimal.RequireFromString("1500.555")

	sale, err := f.uc.Register(context.Background(), seller(), in)
	require.NoError(t, err)
	assert.Equal(t, "1500.56", sale.Amount.StringFixed(2))
}

func TestDelete_BorraVentaYNotaEnlazada(t *testing.T) {
	f := newSaleFixture()
	sale, err := f.uc.Register(context.Background(), seller(), saleRequest())
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(context.Background(), seller(), sale.ID))

	assert.Empty(t, f.saleRepo.sales)
	assert.Empty(t, f.noteRepo.notes, "la nota enlazada se borra con la venta")
}

// Ventas legadas sin note_id: se borra la nota SALE más reciente del cliente.
func TestDelete_SinEnlaceDirecto_CaeALaNotaSALEMasReciente(t *testing.T) {
	f := newSaleFixture()
	f.saleRepo.noSetNote = true // simula despliegue viejo sin columna note_id

	sale, err := f.uc.Register(context.Background(), seller(), saleRequest())
	require.NoError(t, err)

	// La fila persistida no tiene enlace directo a la nota.
	stored, err := f.saleRepo.GetByID(sale.ID)
	require.NoError(t, err)
	require.Empty(t, stored.NoteID)

	// Una nota SALE anterior de otro vendedor, más vieja que la sintetizada.
	old := &entity.CustomerNote{
		ID:         "nota-vieja",
		CustomerID: customerID,
		UserID:     otherID,
		Texto:      "Venta: $100.00 USD. Modelo: M50",
		ActionType: entity.ActionSale,
		CreatedAt:  time.Now().Add(-24 * time.Hour),
	}
	require.NoError(t, f.noteRepo.Create(old))

	require.NoError(t, f.uc.Delete(context.Background(), seller(), sale.ID))

	assert.Empty(t, f.saleRepo.sales)
	// Sobrevive solo la nota vieja: el fallback borró la más reciente.
	require.Len(t, f.noteRepo.notes, 1)
	_, ok := f.noteRepo.notes["nota-vieja"]
	assert.True(t, ok)
}

func TestDelete_NoRevierteElEstadoDeLaUnidad(t *testing.T) {
	f := newSaleFixture()
	sale, err := f.uc.Register(context.Background(), seller(), saleRequest())
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(context.Background(), seller(), sale.ID))

	unit, _ := f.unitRepo.GetByID(unitID)
	assert.Equal(t, entity.UnitStatusSold, unit.Status,
		"borrar la venta no devuelve la unidad a EN_USO")
}

func TestDelete_EmpleadoAjenoRechazado(t *testing.T) {
	f := newSaleFixture()
	sale, err := f.uc.Register(context.Background(), seller(), saleRequest())
	require.NoError(t, err)

	err = f.uc.Delete(context.Background(), crm.Identity{UserID: otherID, Role: "employee"}, sale.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Len(t, f.saleRepo.sales, 1, "la venta queda intacta")
}

func TestDelete_VentaInexistente(t *testing.T) {
	f := newSaleFixture()

	err := f.uc.Delete(context.Background(), seller(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
