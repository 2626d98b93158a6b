// Package analytics expone el dashboard y los reportes. La agregación pura
// vive en domain/pipeline; aquí solo se toma el snapshot y se mapea a DTOs.
package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/Leadflow-api/internal/application/dto"
	"github.com/jhoicas/Leadflow-api/internal/domain/pipeline"
	"github.com/jhoicas/Leadflow-api/internal/domain/repository"
)

// UseCase casos de uso de métricas y reportes.
type UseCase struct {
	analytics repository.AnalyticsRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(analytics repository.AnalyticsRepository) *UseCase {
	return &UseCase{analytics: analytics}
}

// Dashboard KPIs del tablero principal.
func (uc *UseCase) Dashboard(ctx context.Context) (*dto.DashboardMetricsDTO, error) {
	snap, err := uc.analytics.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	m := pipeline.ComputeDashboardMetrics(snap, time.Now())
	return &dto.DashboardMetricsDTO{
		TotalLeads:           m.TotalLeads,
		IntegrationStarted:   m.IntegrationStarted,
		IntegrationCompleted: m.IntegrationCompleted,
		PaymentsReceived:     m.PaymentsReceived,
		PaymentsPending:      m.PaymentsPending,
		ActiveDemos:          m.ActiveDemos,
		FunnelData: dto.FunnelDataDTO{
			Leads:        m.FunnelData.Leads,
			Demos:        m.FunnelData.Demos,
			Integrations: m.FunnelData.Integrations,
			Payments:     m.FunnelData.Payments,
		},
	}, nil
}

// FunnelReport reporte de embudo con tasas de conversión por salto.
func (uc *UseCase) FunnelReport(ctx context.Context) (*dto.FunnelReportDTO, error) {
	snap, err := uc.analytics.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	r := pipeline.ComputeFunnelReport(snap)
	return &dto.FunnelReportDTO{
		Leads:                r.Leads,
		Contacted:            r.Contacted,
		Demos:                r.Demos,
		Integrations:         r.Integrations,
		Paid:                 r.Paid,
		LeadToDemoRate:       r.LeadToDemoRate,
		DemoToIntegration:    r.DemoToIntegration,
		IntegrationToPayment: r.IntegrationToPayment,
	}, nil
}

// SourceAnalysis leads y conversiones agrupados por fuente de captación.
func (uc *UseCase) SourceAnalysis(ctx context.Context) ([]dto.SourceStatDTO, error) {
	snap, err := uc.analytics.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	stats := pipeline.ComputeSourceAnalysis(snap.Leads)
	out := make([]dto.SourceStatDTO, 0, len(stats))
	for _, s := range stats {
		out = append(out, dto.SourceStatDTO{
			Source:      s.Source,
			Leads:       s.Leads,
			Conversions: s.Conversions,
			Rate:        s.Rate,
		})
	}
	return out, nil
}

// DemoReport demos vigentes/vencidas y recaudo acumulado.
func (uc *UseCase) DemoReport(ctx context.Context) (*dto.DemoReportDTO, error) {
	snap, err := uc.analytics.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	r := pipeline.ComputeDemoReport(snap, time.Now())
	return &dto.DemoReportDTO{
		ActiveDemos:  r.ActiveDemos,
		ExpiredDemos: r.ExpiredDemos,
		Revenue:      r.Revenue,
	}, nil
}

// StatusDistribution conteo de leads por estado en orden canónico.
func (uc *UseCase) StatusDistribution(ctx context.Context) ([]dto.StatusCountDTO, error) {
	snap, err := uc.analytics.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	counts := pipeline.ComputeStatusDistribution(snap.Leads)
	out := make([]dto.StatusCountDTO, 0, len(counts))
	for _, c := range counts {
		out = append(out, dto.StatusCountDTO{Status: string(c.Status), Count: c.Count})
	}
	return out, nil
}
