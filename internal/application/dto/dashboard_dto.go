package dto

import "github.com/shopspring/decimal"

// Rangos aceptados por GET /api/dashboard/stats.
const (
	RangeWeek  = "week"
	RangeMonth = "month"
	RangeYear  = "year"
)

// StatsRequest parámetros de query del dashboard de estadísticas.
type StatsRequest struct {
	Range string `query:"range" validate:"omitempty,oneof=week month year"`
}

// DashboardStatsDTO respuesta de GET /api/dashboard/stats. Las tres series se
// consultan en paralelo y se fusionan; cada una es una lectura puntual.
type DashboardStatsDTO struct {
	Range      string             `json:"range"`
	Revenue    []RevenuePointDTO  `json:"revenue"`     // ingresos por día o mes según rango
	Activity   []ActivityCountDTO `json:"activity"`    // distribución de tipos de nota
	TopSellers []SellerRankDTO    `json:"top_sellers"` // top 5 por ingreso del año en curso
}

// RevenuePointDTO ingresos de un período.
type RevenuePointDTO struct {
	Period string          `json:"period"` // "2026-08-31" o "2026-08"
	Total  decimal.Decimal `json:"total"`
	Count  int64           `json:"count"`
}

// ActivityCountDTO cantidad de notas por tipo de acción.
type ActivityCountDTO struct {
	ActionType string `json:"action_type"`
	Count      int64  `json:"count"`
}

// SellerRankDTO vendedor con su ingreso acumulado del año.
type SellerRankDTO struct {
	UserID   string          `json:"user_id"`
	UserName string          `json:"user_name"`
	Total    decimal.Decimal `json:"total"`
	Sales    int64           `json:"sales"`
}

// UserPerformanceDTO actividad del día por usuario.
type UserPerformanceDTO struct {
	UserID   string          `json:"user_id"`
	UserName string          `json:"user_name"`
	Notes    int64           `json:"notes"`
	Sales    int64           `json:"sales"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// ModelSalesDTO ventas agregadas por modelo.
type ModelSalesDTO struct {
	Model   string          `json:"model"`
	Count   int64           `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}
