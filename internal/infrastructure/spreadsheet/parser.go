// Package spreadsheet convierte archivos subidos (.xlsx, .xls, .csv) en filas
// canónicas para el import masivo de clientes. Solo se lee la primera hoja.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Row fila normalizada del archivo. Celdas ausentes quedan como string vacío.
type Row struct {
	Name      string
	Email     string
	Phone     string
	Company   string
	Localidad string
	Sector    string
}

// Alias de encabezados localizados -> campo canónico. Las claves se comparan
// tras trim y lowercase.
var headerAliases = map[string]string{
	"nombre":    "name",
	"name":      "name",
	"correo":    "email",
	"email":     "email",
	"telefono":  "phone",
	"teléfono":  "phone",
	"phone":     "phone",
	"empresa":   "company",
	"company":   "company",
	"region":    "localidad",
	"región":    "localidad",
	"localidad": "localidad",
	"rol":       "sector",
	"sector":    "sector",
}

// SupportedExtension indica si la extensión del archivo es aceptada.
func SupportedExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls", ".csv":
		return true
	}
	return false
}

// Parse lee el archivo completo y devuelve sus filas de datos (sin el
// encabezado) con los alias de columnas ya resueltos. No filtra filas sin
// nombre; eso lo decide el pipeline de import.
func Parse(filename string, data []byte) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return parseWorkbook(data)
	case ".csv":
		return parseCSV(data)
	default:
		return nil, fmt.Errorf("extensión no soportada: %s", filepath.Ext(filename))
	}
}

func parseWorkbook(data []byte) ([]Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("abrir workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	// Solo la primera hoja; el resto se ignora.
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheets[0], err)
	}
	return mapRows(rows), nil
}

func parseCSV(data []byte) ([]Row, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // filas con distinta cantidad de celdas son válidas
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer csv: %w", err)
		}
		rows = append(rows, record)
	}
	return mapRows(rows), nil
}

// mapRows resuelve el encabezado (primera fila) contra los alias y proyecta
// cada fila de datos a Row. Columnas desconocidas se ignoran.
func mapRows(raw [][]string) []Row {
	if len(raw) == 0 {
		return nil
	}

	fieldByCol := make(map[int]string)
	for i, h := range raw[0] {
		key := strings.ToLower(strings.TrimSpace(h))
		if field, ok := headerAliases[key]; ok {
			fieldByCol[i] = field
		}
	}

	out := make([]Row, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		var r Row
		empty := true
		for i, cell := range cells {
			field, ok := fieldByCol[i]
			if !ok {
				continue
			}
			value := strings.TrimSpace(cell)
			if value != "" {
				empty = false
			}
			switch field {
			case "name":
				r.Name = value
			case "email":
				r.Email = value
			case "phone":
				r.Phone = value
			case "company":
				r.Company = value
			case "localidad":
				r.Localidad = value
			case "sector":
				r.Sector = value
			}
		}
		if empty && len(cells) == 0 {
			continue // filas totalmente vacías al final del archivo
		}
		out = append(out, r)
	}
	return out
}
