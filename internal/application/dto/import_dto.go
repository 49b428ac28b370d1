package dto

// ImportReport resultado del import masivo de clientes.
// Duplicates e Invalids contienen solo una muestra (primeros 20 de cada uno);
// los contadores reflejan el total real.
type ImportReport struct {
	Total      int              `json:"total"`    // filas de datos procesadas
	Inserted   int              `json:"inserted"` // clientes nuevos insertados
	Skipped    int              `json:"skipped"`  // duplicados + inválidos + sin nombre
	Duplicates []ImportRowIssue `json:"duplicates"`
	Invalids   []ImportRowIssue `json:"invalids"`
	DupCount   int              `json:"duplicate_count"`
	InvCount   int              `json:"invalid_count"`
}

// ImportRowIssue fila problemática reportada al usuario.
type ImportRowIssue struct {
	Row    int    `json:"row"` // número de fila de datos, base 1
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Reason string `json:"reason"`
}

// CatalogModelDTO entrada del catálogo de equipos.
type CatalogModelDTO struct {
	ID    string `json:"id"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	HP    int    `json:"hp"`
}
