package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Leadflow-api/internal/domain/entity"
	"github.com/jhoicas/Leadflow-api/internal/domain/pipeline"
	"github.com/jhoicas/Leadflow-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard y los reportes.
// Siempre trabaja sobre el pool: las agregaciones no necesitan transacción.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// Snapshot trae el estado completo del pipeline en cuatro consultas en
// paralelo. La agregación se hace en domain/pipeline, no en SQL: los
// volúmenes de un CRM de ventas caben cómodos en memoria y así las reglas de
// conteo quedan testeables sin base de datos.
func (r *AnalyticsRepo) Snapshot(ctx context.Context) (pipeline.Snapshot, error) {
	type leadsResult struct {
		leads []*entity.Lead
		err   error
	}
	type demosResult struct {
		demos []*entity.Demo
		err   error
	}
	type integrationsResult struct {
		integrations []*entity.Integration
		err          error
	}
	type paymentsResult struct {
		payments []*entity.Payment
		err      error
	}

	leadsCh := make(chan leadsResult, 1)
	demosCh := make(chan demosResult, 1)
	integrationsCh := make(chan integrationsResult, 1)
	paymentsCh := make(chan paymentsResult, 1)

	go func() {
		leads, err := NewLeadRepository(r.pool).List()
		leadsCh <- leadsResult{leads, err}
	}()
	go func() {
		demos, err := NewDemoRepository(r.pool).List()
		demosCh <- demosResult{demos, err}
	}()
	go func() {
		integrations, err := NewIntegrationRepository(r.pool).List()
		integrationsCh <- integrationsResult{integrations, err}
	}()
	go func() {
		payments, err := NewPaymentRepository(r.pool).List()
		paymentsCh <- paymentsResult{payments, err}
	}()

	leads := <-leadsCh
	demos := <-demosCh
	integrations := <-integrationsCh
	payments := <-paymentsCh

	var snap pipeline.Snapshot
	if leads.err != nil {
		return snap, fmt.Errorf("snapshot: leads: %w", leads.err)
	}
	if demos.err != nil {
		return snap, fmt.Errorf("snapshot: demos: %w", demos.err)
	}
	if integrations.err != nil {
		return snap, fmt.Errorf("snapshot: integraciones: %w", integrations.err)
	}
	if payments.err != nil {
		return snap, fmt.Errorf("snapshot: pagos: %w", payments.err)
	}

	snap.Leads = leads.leads
	snap.Demos = demos.demos
	snap.Integrations = integrations.integrations
	snap.Payments = payments.payments
	return snap, nil
}
