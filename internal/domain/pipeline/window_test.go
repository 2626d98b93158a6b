package pipeline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Leadflow-api/internal/domain/entity"
	"github.com/jhoicas/Leadflow-api/internal/domain/pipeline"
)

// ──────────────────────────────────────────────────────────────────────────────
// Escenario de referencia: demo Video asignada el 2024-01-16 con 7 días de
// duración → vence el 2024-01-23. Consultada el día 20 quedan 3 días; el 24 ya
// venció (días restantes negativos).
// ──────────────────────────────────────────────────────────────────────────────

func demoFixture() *entity.Demo {
	start := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	return &entity.Demo{
		ID:        "demo-1",
		LeadID:    "lead-1",
		Type:      entity.DemoTypeVideo,
		StartDate: start,
		EndDate:   pipeline.DemoEndDate(start, 7),
		Status:    entity.DemoStatusScheduled,
	}
}

func TestDemoEndDate_DuracionExacta(t *testing.T) {
	start := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	end := pipeline.DemoEndDate(start, 7)
	assert.Equal(t, 7*24*time.Hour, end.Sub(start), "end - start debe ser exactamente la duración")
}

func TestWindow_DemoVigente(t *testing.T) {
	demo := demoFixture()
	now := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	w := pipeline.Window(demo, now)
	assert.Equal(t, 3, w.DaysRemaining)
	assert.False(t, w.Expired)
}

func TestWindow_DemoVencida(t *testing.T) {
	demo := demoFixture()
	now := time.Date(2024, 1, 24, 0, 0, 0, 0, time.UTC)

	w := pipeline.Window(demo, now)
	assert.Equal(t, -1, w.DaysRemaining)
	assert.True(t, w.Expired)
}

func TestWindow_FraccionDeDiaRedondeaArriba(t *testing.T) {
	demo := demoFixture()
	// 12 horas antes del vencimiento: ceil(0.5) = 1 día restante
	now := demo.EndDate.Add(-12 * time.Hour)

	w := pipeline.Window(demo, now)
	assert.Equal(t, 1, w.DaysRemaining)
	assert.False(t, w.Expired)
}

func TestExpiresWithin(t *testing.T) {
	demo := demoFixture()

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"vence en 12h", demo.EndDate.Add(-12 * time.Hour), true},
		{"vence en exactamente 24h", demo.EndDate.Add(-24 * time.Hour), true},
		{"falta más de un día", demo.EndDate.Add(-36 * time.Hour), false},
		{"ya venció", demo.EndDate.Add(2 * time.Hour), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pipeline.ExpiresWithin(demo, tc.now, 24*time.Hour))
		})
	}
}
