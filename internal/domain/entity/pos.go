package entity

import "time"

// TypePOS valor fijo del campo Type para puntos de venta.
const TypePOS = "POS"

// PointOfSale representa un punto de venta (concesionario o revendedor).
// Misma forma que Customer pero se persiste en tabla propia.
type PointOfSale struct {
	ID         string
	Name       string
	Company    string
	Phone      string
	Email      string
	Localidad  string
	Sector     string
	Type       string // siempre POS
	AssignedTo string
	CreatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
