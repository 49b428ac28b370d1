package spreadsheet_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/agroventas/crm-api/internal/infrastructure/spreadsheet"
)

func TestSupportedExtension(t *testing.T) {
	assert.True(t, spreadsheet.SupportedExtension("clientes.xlsx"))
	assert.True(t, spreadsheet.SupportedExtension("clientes.XLSX"))
	assert.True(t, spreadsheet.SupportedExtension("clientes.xls"))
	assert.True(t, spreadsheet.SupportedExtension("clientes.csv"))
	assert.False(t, spreadsheet.SupportedExtension("clientes.txt"))
	assert.False(t, spreadsheet.SupportedExtension("clientes"))
}

func TestParse_CSVConAliasDeEncabezados(t *testing.T) {
	csv := "Nombre, Correo ,TELEFONO,Empresa,Region,Rol\n" +
		"Juan Pérez,juan@campo.com,1144445555,La Loma,Pergamino,agricultura\n" +
		"Ana,,,,,\n"

	rows, err := spreadsheet.Parse("clientes.csv", []byte(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, spreadsheet.Row{
		Name:      "Juan Pérez",
		Email:     "juan@campo.com",
		Phone:     "1144445555",
		Company:   "La Loma",
		Localidad: "Pergamino",
		Sector:    "agricultura",
	}, rows[0])

	assert.Equal(t, "Ana", rows[1].Name)
	assert.Empty(t, rows[1].Email)
}

func TestParse_CSVConColumnasDesconocidas(t *testing.T) {
	csv := "nombre,columna_rara,email\n" +
		"Juan,se ignora,juan@campo.com\n"

	rows, err := spreadsheet.Parse("clientes.csv", []byte(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Juan", rows[0].Name)
	assert.Equal(t, "juan@campo.com", rows[0].Email)
}

func TestParse_CSVFilasConDistintaCantidadDeCeldas(t *testing.T) {
	csv := "nombre,email,telefono\n" +
		"Juan,juan@campo.com\n" + // fila corta
		"Ana,ana@campo.com,1144445555\n"

	rows, err := spreadsheet.Parse("clientes.csv", []byte(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Empty(t, rows[0].Phone)
	assert.Equal(t, "1144445555", rows[1].Phone)
}

func TestParse_XLSXPrimeraHoja(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]string{"Nombre", "Correo", "Telefono"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]string{"Juan", "juan@campo.com", "1144445555"}))

	// Una segunda hoja con datos que deben ignorarse.
	_, err := f.NewSheet("Otra")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Otra", "A1", &[]string{"Nombre"}))
	require.NoError(t, f.SetSheetRow("Otra", "A2", &[]string{"NoDebeAparecer"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	rows, err := spreadsheet.Parse("clientes.xlsx", buf.Bytes())
	require.NoError(t, err)
	require.Len(t, rows, 1, "solo se lee la primera hoja")
	assert.Equal(t, "Juan", rows[0].Name)
	assert.Equal(t, "juan@campo.com", rows[0].Email)
}

func TestParse_ExtensionDesconocida(t *testing.T) {
	_, err := spreadsheet.Parse("clientes.pdf", []byte("datos"))
	assert.Error(t, err)
}

func TestParse_ArchivoVacio(t *testing.T) {
	rows, err := spreadsheet.Parse("clientes.csv", nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
