package dto

import "time"

// CreateUnitRequest alta de unidad para un cliente o punto de venta (el dueño
// lo determina la ruta). Status por defecto EN_USO si se omite.
type CreateUnitRequest struct {
	Brand    string `json:"brand" validate:"required,max=80"`
	Model    string `json:"model" validate:"required,max=120"`
	Year     int    `json:"year" validate:"omitempty,min=1950,max=2100"`
	HP       int    `json:"hp" validate:"omitempty,min=0,max=2000"`
	Status   string `json:"status" validate:"omitempty,oneof=EN_USO SOLD RETIRED"`
	Hours    int    `json:"hours" validate:"min=0"`
	Comments string `json:"comments" validate:"max=1000"`
}

// UpdateUnitRequest modificación de unidad, incluido el pase manual a RETIRED.
type UpdateUnitRequest struct {
	Brand    string `json:"brand" validate:"required,max=80"`
	Model    string `json:"model" validate:"required,max=120"`
	Year     int    `json:"year" validate:"omitempty,min=1950,max=2100"`
	HP       int    `json:"hp" validate:"omitempty,min=0,max=2000"`
	Status   string `json:"status" validate:"required,oneof=EN_USO SOLD RETIRED"`
	Hours    int    `json:"hours" validate:"min=0"`
	Comments string `json:"comments" validate:"max=1000"`
}

// UnitResponse representación pública de una unidad.
type UnitResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id,omitempty"`
	POSID      string    `json:"pos_id,omitempty"`
	Brand      string    `json:"brand"`
	Model      string    `json:"model"`
	Year       int       `json:"year,omitempty"`
	HP         int       `json:"hp,omitempty"`
	Status     string    `json:"status"`
	Hours      int       `json:"hours,omitempty"`
	Comments   string    `json:"comments,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
