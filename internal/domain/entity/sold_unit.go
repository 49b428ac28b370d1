package entity

import "time"

// Estados de una unidad vendida.
const (
	UnitStatusEnUso   = "EN_USO"
	UnitStatusSold    = "SOLD"
	UnitStatusRetired = "RETIRED"
)

// SoldUnit representa un equipo en poder de exactamente un Customer o un
// PointOfSale (claves foráneas mutuamente excluyentes).
type SoldUnit struct {
	ID         string
	CustomerID string // vacío si la unidad pertenece a un POS
	POSID      string // vacío si la unidad pertenece a un cliente
	Brand      string
	Model      string
	Year       int
	HP         int
	Status     string // EN_USO, SOLD, RETIRED
	Hours      int
	Comments   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ValidUnitStatus indica si s es un estado reconocido.
func ValidUnitStatus(s string) bool {
	switch s {
	case UnitStatusEnUso, UnitStatusSold, UnitStatusRetired:
		return true
	}
	return false
}
