package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agroventas/crm-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para los dashboards.
// Cada método es una lectura puntual; no hay consistencia cruzada entre ellos.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// RevenueByPeriod agrupa ingresos por día o por mes según bucket.
// El formato del período es "YYYY-MM-DD" para día y "YYYY-MM" para mes.
func (r *AnalyticsRepo) RevenueByPeriod(
	ctx context.Context,
	start, end time.Time,
	bucket string,
) ([]repository.RevenuePoint, error) {
	format := "YYYY-MM-DD"
	if bucket == repository.BucketMonth {
		format = "YYYY-MM"
	}
	const query = `
	SELECT
	    TO_CHAR(created_at, $3)      AS period,
	    COALESCE(SUM(amount), 0)     AS total,
	    COUNT(*)                     AS sales
	FROM sales_records
	WHERE created_at BETWEEN $1 AND $2
	GROUP BY period
	ORDER BY period`

	rows, err := r.pool.Query(ctx, query, start, end, format)
	if err != nil {
		return nil, fmt.Errorf("analytics.RevenueByPeriod: %w", err)
	}
	defer rows.Close()

	var results []repository.RevenuePoint
	for rows.Next() {
		var p repository.RevenuePoint
		if err := rows.Scan(&p.Period, &p.Total, &p.Count); err != nil {
			return nil, fmt.Errorf("analytics.RevenueByPeriod scan: %w", err)
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

// ActivityDistribution cuenta notas por tipo de acción en la ventana.
func (r *AnalyticsRepo) ActivityDistribution(
	ctx context.Context,
	start, end time.Time,
) ([]repository.ActivityCount, error) {
	const query = `
	SELECT action_type, COUNT(*)
	FROM customer_notes
	WHERE created_at BETWEEN $1 AND $2
	GROUP BY action_type
	ORDER BY COUNT(*) DESC`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("analytics.ActivityDistribution: %w", err)
	}
	defer rows.Close()

	var results []repository.ActivityCount
	for rows.Next() {
		var a repository.ActivityCount
		if err := rows.Scan(&a.ActionType, &a.Count); err != nil {
			return nil, fmt.Errorf("analytics.ActivityDistribution scan: %w", err)
		}
		results = append(results, a)
	}
	return results, rows.Err()
}

// TopSellers ranking de vendedores por ingreso desde `since`.
func (r *AnalyticsRepo) TopSellers(
	ctx context.Context,
	since time.Time,
	limit int,
) ([]repository.SellerRank, error) {
	const query = `
	SELECT
	    u.id,
	    u.name,
	    COALESCE(SUM(s.amount), 0)  AS total,
	    COUNT(s.id)                 AS sales
	FROM sales_records s
	JOIN users u ON u.id = s.user_id
	WHERE s.created_at >= $1
	GROUP BY u.id, u.name
	ORDER BY total DESC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.TopSellers: %w", err)
	}
	defer rows.Close()

	var results []repository.SellerRank
	for rows.Next() {
		var s repository.SellerRank
		if err := rows.Scan(&s.UserID, &s.UserName, &s.Total, &s.Sales); err != nil {
			return nil, fmt.Errorf("analytics.TopSellers scan: %w", err)
		}
		results = append(results, s)
	}
	return results, rows.Err()
}

// DailyPerformance notas y ventas del día por usuario. Incluye usuarios sin
// actividad de venta pero con notas, y viceversa (LEFT JOIN desde users).
func (r *AnalyticsRepo) DailyPerformance(
	ctx context.Context,
	dayStart, dayEnd time.Time,
) ([]repository.UserPerformance, error) {
	const query = `
	SELECT
	    u.id,
	    u.name,
	    COALESCE(n.notes, 0)    AS notes,
	    COALESCE(s.sales, 0)    AS sales,
	    COALESCE(s.revenue, 0)  AS revenue
	FROM users u
	LEFT JOIN (
	    SELECT user_id, COUNT(*) AS notes
	    FROM customer_notes
	    WHERE created_at BETWEEN $1 AND $2
	    GROUP BY user_id
	) n ON n.user_id = u.id
	LEFT JOIN (
	    SELECT user_id, COUNT(*) AS sales, SUM(amount) AS revenue
	    FROM sales_records
	    WHERE created_at BETWEEN $1 AND $2
	    GROUP BY user_id
	) s ON s.user_id = u.id
	WHERE COALESCE(n.notes, 0) > 0 OR COALESCE(s.sales, 0) > 0
	ORDER BY revenue DESC, notes DESC`

	rows, err := r.pool.Query(ctx, query, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("analytics.DailyPerformance: %w", err)
	}
	defer rows.Close()

	var results []repository.UserPerformance
	for rows.Next() {
		var p repository.UserPerformance
		if err := rows.Scan(&p.UserID, &p.UserName, &p.Notes, &p.Sales, &p.Revenue); err != nil {
			return nil, fmt.Errorf("analytics.DailyPerformance scan: %w", err)
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

// SalesByModel ventas agregadas por modelo. Las ventas sin modelo se
// consolidan en el grupo "Sin modelo".
func (r *AnalyticsRepo) SalesByModel(ctx context.Context) ([]repository.ModelSales, error) {
	const query = `
	SELECT
	    COALESCE(NULLIF(model, ''), 'Sin modelo') AS model,
	    COUNT(*)                                  AS sales,
	    COALESCE(SUM(amount), 0)                  AS revenue
	FROM sales_records
	GROUP BY 1
	ORDER BY revenue DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.SalesByModel: %w", err)
	}
	defer rows.Close()

	var results []repository.ModelSales
	for rows.Next() {
		var m repository.ModelSales
		if err := rows.Scan(&m.Model, &m.Count, &m.Revenue); err != nil {
			return nil, fmt.Errorf("analytics.SalesByModel scan: %w", err)
		}
		results = append(results, m)
	}
	return results, rows.Err()
}
