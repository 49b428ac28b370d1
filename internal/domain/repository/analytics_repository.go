package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Buckets de agrupación temporal para ingresos.
const (
	BucketDay   = "day"
	BucketMonth = "month"
)

// RevenuePoint ingresos agregados de un período (día o mes).
type RevenuePoint struct {
	Period string // "2026-08-31" o "2026-08" según bucket
	Total  decimal.Decimal
	Count  int64
}

// ActivityCount cantidad de notas por tipo de acción en la ventana.
type ActivityCount struct {
	ActionType string
	Count      int64
}

// SellerRank vendedor con su ingreso acumulado.
type SellerRank struct {
	UserID   string
	UserName string
	Total    decimal.Decimal
	Sales    int64
}

// UserPerformance actividad del día por usuario.
type UserPerformance struct {
	UserID   string
	UserName string
	Notes    int64
	Sales    int64
	Revenue  decimal.Decimal
}

// ModelSales ventas agregadas por modelo.
type ModelSales struct {
	Model   string
	Count   int64
	Revenue decimal.Decimal
}

// AnalyticsRepository consultas agregadas de solo lectura. Cada consulta es
// una lectura puntual; no se garantiza consistencia entre ellas.
type AnalyticsRepository interface {
	RevenueByPeriod(ctx context.Context, start, end time.Time, bucket string) ([]RevenuePoint, error)
	ActivityDistribution(ctx context.Context, start, end time.Time) ([]ActivityCount, error)
	TopSellers(ctx context.Context, since time.Time, limit int) ([]SellerRank, error)
	DailyPerformance(ctx context.Context, dayStart, dayEnd time.Time) ([]UserPerformance, error)
	SalesByModel(ctx context.Context) ([]ModelSales, error)
}
