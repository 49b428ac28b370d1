package dto

import "time"

// CreateCustomerRequest alta de cliente. type es fijo (CLIENT); no se acepta
// del lado del cliente.
type CreateCustomerRequest struct {
	Name       string `json:"name" validate:"required,max=160"`
	Company    string `json:"company" validate:"max=160"`
	Phone      string `json:"phone" validate:"max=40"`
	Email      string `json:"email" validate:"omitempty,email,max=160"`
	Localidad  string `json:"localidad" validate:"max=120"`
	Sector     string `json:"sector" validate:"max=120"`
	AssignedTo string `json:"assigned_to" validate:"omitempty,uuid4"`
}

// UpdateCustomerRequest modificación de cliente. created_by es inmutable.
type UpdateCustomerRequest struct {
	Name       string `json:"name" validate:"required,max=160"`
	Company    string `json:"company" validate:"max=160"`
	Phone      string `json:"phone" validate:"max=40"`
	Email      string `json:"email" validate:"omitempty,email,max=160"`
	Localidad  string `json:"localidad" validate:"max=120"`
	Sector     string `json:"sector" validate:"max=120"`
	AssignedTo string `json:"assigned_to" validate:"omitempty,uuid4"`
}

// AssignCustomerRequest reasignación (solo roles privilegiados).
type AssignCustomerRequest struct {
	AssignedTo string `json:"assigned_to" validate:"required,uuid4"`
}

// BulkDeleteRequest borrado masivo por IDs.
type BulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,max=200,dive,uuid4"`
}

// BulkDeleteResponse resultado del borrado masivo: los clientes con
// referencias quedan intactos y se reportan como omitidos.
type BulkDeleteResponse struct {
	Deleted int      `json:"deleted"`
	Skipped []string `json:"skipped"` // IDs no borrados (referenciados o inexistentes)
}

// CustomerResponse representación pública de un cliente.
type CustomerResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Company    string    `json:"company,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email,omitempty"`
	Localidad  string    `json:"localidad,omitempty"`
	Sector     string    `json:"sector,omitempty"`
	Type       string    `json:"type"`
	AssignedTo string    `json:"assigned_to,omitempty"`
	CreatedBy  string    `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
