package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterSaleRequest registro de una venta desde el dashboard.
// Amount debe ser positivo; se redondea a 2 decimales al persistir.
type RegisterSaleRequest struct {
	CustomerID string          `json:"customer_id" validate:"required,uuid4"`
	SoldUnitID string          `json:"sold_unit_id" validate:"omitempty,uuid4"`
	Amount     decimal.Decimal `json:"amount" validate:"required"`
	Currency   string          `json:"currency" validate:"required,oneof=USD ARS"`
	Model      string          `json:"model" validate:"max=120"`
	HP         int             `json:"hp" validate:"omitempty,min=0,max=2000"`
	Notes      string          `json:"notes" validate:"max=1000"`
}

// SaleResponse representación pública de una venta.
type SaleResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	UserID     string          `json:"user_id"`
	SoldUnitID string          `json:"sold_unit_id,omitempty"`
	NoteID     string          `json:"note_id,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Currency   string          `json:"currency"`
	Model      string          `json:"model,omitempty"`
	HP         int             `json:"hp,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
