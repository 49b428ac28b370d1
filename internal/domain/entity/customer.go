package entity

import "time"

// TypeClient valor fijo del campo Type para clientes finales.
const TypeClient = "CLIENT"

// Customer representa un cliente final del concesionario.
type Customer struct {
	ID         string
	Name       string
	Company    string
	Phone      string
	Email      string
	Localidad  string
	Sector     string
	Type       string // siempre CLIENT
	AssignedTo string // usuario dueño actual (puede reasignarse)
	CreatedBy  string // usuario creador, inmutable
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CustomerRefs conteo de registros que referencian a un cliente.
// Un cliente solo puede borrarse cuando los tres conteos son cero.
type CustomerRefs struct {
	Sales int
	Units int
	Notes int
}

// Total suma de referencias.
func (r CustomerRefs) Total() int { return r.Sales + r.Units + r.Notes }
