// Package analytics contiene los casos de uso de reportes y el dashboard de
// estadísticas de venta.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/agroventas/crm-api/internal/application/dto"
	"github.com/agroventas/crm-api/internal/domain/repository"
)

const dashboardTopSellers = 5 // vendedores en el ranking del dashboard

// DashboardUseCase genera las series del dashboard.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). No accede
// directamente a las tablas; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetStats construye el DashboardStatsDTO para el rango pedido.
//
// Tres llamadas en paralelo:
//  1. RevenueByPeriod(ventana)  → Revenue (por día en week/month, por mes en year)
//  2. ActivityDistribution(ventana) → Activity
//  3. TopSellers(año en curso, top 5) → TopSellers
//
// Cada serie es una lectura puntual; no hay consistencia entre ellas.
func (uc *DashboardUseCase) GetStats(ctx context.Context, rng string) (*dto.DashboardStatsDTO, error) {
	now := time.Now()
	start, bucket := rangeWindow(rng, now)
	end := now
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	type revenueResult struct {
		points []repository.RevenuePoint
		err    error
	}
	type activityResult struct {
		counts []repository.ActivityCount
		err    error
	}
	type sellersResult struct {
		ranks []repository.SellerRank
		err   error
	}

	revenueCh := make(chan revenueResult, 1)
	activityCh := make(chan activityResult, 1)
	sellersCh := make(chan sellersResult, 1)

	go func() {
		points, err := uc.analyticsRepo.RevenueByPeriod(ctx, start, end, bucket)
		revenueCh <- revenueResult{points, err}
	}()
	go func() {
		counts, err := uc.analyticsRepo.ActivityDistribution(ctx, start, end)
		activityCh <- activityResult{counts, err}
	}()
	go func() {
		ranks, err := uc.analyticsRepo.TopSellers(ctx, yearStart, dashboardTopSellers)
		sellersCh <- sellersResult{ranks, err}
	}()

	revenue := <-revenueCh
	activity := <-activityCh
	sellers := <-sellersCh

	if revenue.err != nil {
		return nil, fmt.Errorf("dashboard: ingresos por período: %w", revenue.err)
	}
	if activity.err != nil {
		return nil, fmt.Errorf("dashboard: distribución de actividad: %w", activity.err)
	}
	if sellers.err != nil {
		return nil, fmt.Errorf("dashboard: top vendedores: %w", sellers.err)
	}

	out := &dto.DashboardStatsDTO{
		Range:      rng,
		Revenue:    make([]dto.RevenuePointDTO, 0, len(revenue.points)),
		Activity:   make([]dto.ActivityCountDTO, 0, len(activity.counts)),
		TopSellers: make([]dto.SellerRankDTO, 0, len(sellers.ranks)),
	}
	for _, p := range revenue.points {
		out.Revenue = append(out.Revenue, dto.RevenuePointDTO{
			Period: p.Period,
			Total:  p.Total.Round(2),
			Count:  p.Count,
		})
	}
	for _, c := range activity.counts {
		out.Activity = append(out.Activity, dto.ActivityCountDTO{
			ActionType: c.ActionType,
			Count:      c.Count,
		})
	}
	for _, s := range sellers.ranks {
		out.TopSellers = append(out.TopSellers, dto.SellerRankDTO{
			UserID:   s.UserID,
			UserName: s.UserName,
			Total:    s.Total.Round(2),
			Sales:    s.Sales,
		})
	}
	return out, nil
}

// DailyPerformance actividad de hoy por usuario: notas, ventas e ingresos.
func (uc *DashboardUseCase) DailyPerformance(ctx context.Context) ([]dto.UserPerformanceDTO, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	rows, err := uc.analyticsRepo.DailyPerformance(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("dashboard: rendimiento diario: %w", err)
	}
	out := make([]dto.UserPerformanceDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.UserPerformanceDTO{
			UserID:   r.UserID,
			UserName: r.UserName,
			Notes:    r.Notes,
			Sales:    r.Sales,
			Revenue:  r.Revenue.Round(2),
		})
	}
	return out, nil
}

// SalesByModel ventas históricas agrupadas por modelo.
func (uc *DashboardUseCase) SalesByModel(ctx context.Context) ([]dto.ModelSalesDTO, error) {
	rows, err := uc.analyticsRepo.SalesByModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: ventas por modelo: %w", err)
	}
	out := make([]dto.ModelSalesDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ModelSalesDTO{
			Model:   r.Model,
			Count:   r.Count,
			Revenue: r.Revenue.Round(2),
		})
	}
	return out, nil
}

// rangeWindow traduce el rango pedido a una fecha de inicio y un bucket de
// agrupación. Rango desconocido o vacío cae a month.
func rangeWindow(rng string, now time.Time) (time.Time, string) {
	switch rng {
	case dto.RangeWeek:
		return now.AddDate(0, 0, -7), repository.BucketDay
	case dto.RangeYear:
		return now.AddDate(-1, 0, 0), repository.BucketMonth
	default:
		return now.AddDate(0, -1, 0), repository.BucketDay
	}
}
