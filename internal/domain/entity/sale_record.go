package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Monedas aceptadas en ventas.
const (
	CurrencyUSD = "USD"
	CurrencyARS = "ARS"
)

// SaleRecord registro financiero de una venta. NoteID referencia la nota de
// actividad sintetizada al registrar la venta (puede faltar en filas legadas).
type SaleRecord struct {
	ID         string
	CustomerID string
	UserID     string
	SoldUnitID string // opcional: unidad vendida en esta operación
	NoteID     string // opcional: nota SALE sintetizada
	Amount     decimal.Decimal
	Currency   string // USD, ARS
	Model      string
	HP         int
	Notes      string
	CreatedAt  time.Time
}

// ValidCurrency indica si s es una moneda reconocida.
func ValidCurrency(s string) bool {
	return s == CurrencyUSD || s == CurrencyARS
}
