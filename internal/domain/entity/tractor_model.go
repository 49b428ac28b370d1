package entity

// TractorModel entrada del catálogo estático de equipos. Solo lectura para el
// resto del sistema.
type TractorModel struct {
	ID    string
	Brand string
	Model string
	HP    int
}
