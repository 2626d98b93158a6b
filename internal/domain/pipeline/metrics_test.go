package pipeline_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Leadflow-api/internal/domain/entity"
	"github.com/jhoicas/Leadflow-api/internal/domain/pipeline"
)

var metricsNow = time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)

// snapshotFixture: 3 leads — uno Paid con pago de 5000, uno con demo activa y
// uno New sin sub-registros.
func snapshotFixture() pipeline.Snapshot {
	return pipeline.Snapshot{
		Leads: []*entity.Lead{
			{ID: "l1", Name: "Bob Johnson", Source: "Referral", Status: entity.LeadStatusPaid},
			{ID: "l2", Name: "Jane Smith", Source: "Social Media", Status: entity.LeadStatusDemo},
			{ID: "l3", Name: "John Doe", Source: "Website", Status: entity.LeadStatusNew},
		},
		Demos: []*entity.Demo{
			{
				ID: "d1", LeadID: "l2", Type: entity.DemoTypeVideo,
				StartDate: metricsNow.Add(-48 * time.Hour),
				EndDate:   metricsNow.Add(72 * time.Hour),
				Status:    entity.DemoStatusScheduled,
			},
		},
		Integrations: []*entity.Integration{
			{ID: "i1", LeadID: "l1", Status: entity.IntegrationCompleted, StartDate: metricsNow.Add(-96 * time.Hour)},
		},
		Payments: []*entity.Payment{
			{ID: "p1", LeadID: "l1", Amount: decimal.NewFromInt(5000), Status: entity.PaymentPaid, PaymentDate: metricsNow},
		},
	}
}

func TestComputeDashboardMetrics_Escenario(t *testing.T) {
	m := pipeline.ComputeDashboardMetrics(snapshotFixture(), metricsNow)

	assert.Equal(t, 3, m.TotalLeads)
	assert.Equal(t, 1, m.PaymentsReceived)
	assert.Equal(t, 0, m.PaymentsPending)
	assert.Equal(t, 1, m.ActiveDemos)
	assert.Equal(t, 0, m.IntegrationStarted)
	assert.Equal(t, 1, m.IntegrationCompleted)

	assert.Equal(t, 3, m.FunnelData.Leads)
	assert.Equal(t, 1, m.FunnelData.Demos)
	assert.Equal(t, 1, m.FunnelData.Integrations)
	assert.Equal(t, 1, m.FunnelData.Payments)
}

func TestComputeDashboardMetrics_SnapshotVacio(t *testing.T) {
	m := pipeline.ComputeDashboardMetrics(pipeline.Snapshot{}, metricsNow)
	assert.Equal(t, 0, m.TotalLeads)
	assert.Equal(t, 0, m.FunnelData.Payments)
}

func TestComputeDashboardMetrics_DemoVencidaNoEsActiva(t *testing.T) {
	snap := snapshotFixture()
	snap.Demos[0].EndDate = metricsNow.Add(-time.Hour)

	m := pipeline.ComputeDashboardMetrics(snap, metricsNow)
	assert.Equal(t, 0, m.ActiveDemos)
	// sigue contando en el embudo: el lead tiene demo asociada
	assert.Equal(t, 1, m.FunnelData.Demos)
}

func TestConversionRate(t *testing.T) {
	cases := []struct {
		name     string
		num, den int
		want     int
	}{
		{"mitad", 1, 2, 50},
		{"todo", 3, 3, 100},
		{"nada", 0, 5, 0},
		{"denominador cero devuelve cero", 7, 0, 0},
		{"denominador negativo devuelve cero", 7, -1, 0},
		{"redondeo al entero más cercano", 1, 3, 33},
		{"redondeo hacia arriba", 2, 3, 67},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pipeline.ConversionRate(tc.num, tc.den))
		})
	}
}

func TestComputeFunnelReport(t *testing.T) {
	r := pipeline.ComputeFunnelReport(snapshotFixture())

	assert.Equal(t, 3, r.Leads)
	assert.Equal(t, 2, r.Contacted, "Paid y Demo salieron de New; el lead New no")
	assert.Equal(t, 1, r.Demos)
	assert.Equal(t, 1, r.Integrations)
	assert.Equal(t, 1, r.Paid)
	assert.Equal(t, 33, r.LeadToDemoRate)
	assert.Equal(t, 100, r.DemoToIntegration)
	assert.Equal(t, 100, r.IntegrationToPayment)
}

func TestComputeSourceAnalysis(t *testing.T) {
	leads := []*entity.Lead{
		{ID: "1", Source: "Website", Status: entity.LeadStatusIntegrated},
		{ID: "2", Source: "Website", Status: entity.LeadStatusNew},
		{ID: "3", Source: "Referral", Status: entity.LeadStatusNew},
	}
	stats := pipeline.ComputeSourceAnalysis(leads)
	require.Len(t, stats, 2)

	// ordenado por cantidad de leads descendente
	assert.Equal(t, "Website", stats[0].Source)
	assert.Equal(t, 2, stats[0].Leads)
	assert.Equal(t, 1, stats[0].Conversions)
	assert.Equal(t, 50, stats[0].Rate)

	assert.Equal(t, "Referral", stats[1].Source)
	assert.Equal(t, 0, stats[1].Conversions)
	assert.Equal(t, 0, stats[1].Rate)
}

func TestComputeDemoReport(t *testing.T) {
	snap := snapshotFixture()
	snap.Demos = append(snap.Demos, &entity.Demo{
		ID: "d2", LeadID: "l3", Type: entity.DemoTypeTrial,
		StartDate: metricsNow.Add(-10 * 24 * time.Hour),
		EndDate:   metricsNow.Add(-3 * 24 * time.Hour),
	})

	r := pipeline.ComputeDemoReport(snap, metricsNow)
	assert.Equal(t, 1, r.ActiveDemos)
	assert.Equal(t, 1, r.ExpiredDemos)
	assert.True(t, r.Revenue.Equal(decimal.NewFromInt(5000)), "revenue = %s", r.Revenue)
}

func TestComputeStatusDistribution_SieteEstadosSiempre(t *testing.T) {
	dist := pipeline.ComputeStatusDistribution(snapshotFixture().Leads)
	require.Len(t, dist, 7)

	counts := make(map[entity.LeadStatus]int)
	for _, sc := range dist {
		counts[sc.Status] = sc.Count
	}
	assert.Equal(t, 1, counts[entity.LeadStatusNew])
	assert.Equal(t, 1, counts[entity.LeadStatusDemo])
	assert.Equal(t, 1, counts[entity.LeadStatusPaid])
	assert.Equal(t, 0, counts[entity.LeadStatusRejected])
}
