package pipeline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Leadflow-api/internal/domain/entity"
	"github.com/jhoicas/Leadflow-api/internal/domain/pipeline"
)

var notifyNow = time.Date(2024, 1, 22, 10, 0, 0, 0, time.UTC)

func TestNotificationTypeForStatus(t *testing.T) {
	cases := []struct {
		status entity.LeadStatus
		want   entity.NotificationType
		ok     bool
	}{
		{entity.LeadStatusDemo, entity.NotifDemoExpiry, true},
		{entity.LeadStatusIntegrated, entity.NotifIntegrationDeadline, true},
		{entity.LeadStatusPaid, entity.NotifPaymentReminder, true},
		// etiqueta heredada del producto: Rejected genera follow_up
		{entity.LeadStatusRejected, entity.NotifFollowUp, true},
		{entity.LeadStatusNew, "", false},
		{entity.LeadStatusContacted, "", false},
		{entity.LeadStatusUnpaid, "", false},
	}
	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			got, ok := pipeline.NotificationTypeForStatus(tc.status)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBuildImportNotification_LoteVacioNoNotifica(t *testing.T) {
	assert.Nil(t, pipeline.BuildImportNotification(0, notifyNow))
	assert.Nil(t, pipeline.BuildImportNotification(-1, notifyNow))

	n := pipeline.BuildImportNotification(12, notifyNow)
	require.NotNil(t, n)
	assert.Equal(t, entity.NotifLeadAssigned, n.Type)
	assert.Contains(t, n.Message, "12")
	assert.False(t, n.Read)
}

func TestBuildStatusChangeNotification(t *testing.T) {
	lead := &entity.Lead{ID: "l1", Name: "Jane Smith"}

	n := pipeline.BuildStatusChangeNotification(lead, entity.LeadStatusPaid, notifyNow)
	require.NotNil(t, n)
	assert.Equal(t, entity.NotifPaymentReminder, n.Type)
	assert.Contains(t, n.Message, "Jane Smith")
	assert.Equal(t, "l1", n.LeadID)

	assert.Nil(t, pipeline.BuildStatusChangeNotification(lead, entity.LeadStatusContacted, notifyNow),
		"Contacted no es un estado significativo")
}

// ──────────────────────────────────────────────────────────────────────────────
// CheckDemoExpiry
// ──────────────────────────────────────────────────────────────────────────────

func expiryFixture() ([]*entity.Lead, []*entity.Demo) {
	leads := []*entity.Lead{
		{ID: "l1", Name: "Jane Smith", Status: entity.LeadStatusDemo},
		{ID: "l2", Name: "John Doe", Status: entity.LeadStatusDemo},
		{ID: "l3", Name: "Bob Johnson", Status: entity.LeadStatusContacted},
	}
	demos := []*entity.Demo{
		// vence en 12h → debe avisar
		{ID: "d1", LeadID: "l1", EndDate: notifyNow.Add(12 * time.Hour)},
		// vence en 3 días → todavía no
		{ID: "d2", LeadID: "l2", EndDate: notifyNow.Add(72 * time.Hour)},
		// lead ya no está en Demo → se ignora aunque venza pronto
		{ID: "d3", LeadID: "l3", EndDate: notifyNow.Add(6 * time.Hour)},
	}
	return leads, demos
}

func TestCheckDemoExpiry_EmiteSoloParaVencimientoProximo(t *testing.T) {
	leads, demos := expiryFixture()

	out := pipeline.CheckDemoExpiry(leads, demos, nil, notifyNow)
	require.Len(t, out, 1)
	assert.Equal(t, entity.NotifDemoExpiry, out[0].Type)
	assert.Contains(t, out[0].Message, "Jane Smith")
	assert.Equal(t, "l1", out[0].LeadID)
}

func TestCheckDemoExpiry_Idempotente(t *testing.T) {
	leads, demos := expiryFixture()

	first := pipeline.CheckDemoExpiry(leads, demos, nil, notifyNow)
	require.Len(t, first, 1)

	// segunda corrida con el aviso de la primera ya persistido: nada nuevo
	second := pipeline.CheckDemoExpiry(leads, demos, first, notifyNow)
	assert.Empty(t, second)
}

func TestCheckDemoExpiry_AvisoLeidoPermiteReavisar(t *testing.T) {
	leads, demos := expiryFixture()

	first := pipeline.CheckDemoExpiry(leads, demos, nil, notifyNow)
	require.Len(t, first, 1)
	first[0].Read = true

	// la deduplicación solo considera avisos NO leídos
	second := pipeline.CheckDemoExpiry(leads, demos, first, notifyNow)
	require.Len(t, second, 1)
	assert.Contains(t, second[0].Message, "Jane Smith")
}

func TestCheckDemoExpiry_DemoYaVencidaNoAvisa(t *testing.T) {
	leads := []*entity.Lead{{ID: "l1", Name: "Jane Smith", Status: entity.LeadStatusDemo}}
	demos := []*entity.Demo{{ID: "d1", LeadID: "l1", EndDate: notifyNow.Add(-time.Hour)}}

	out := pipeline.CheckDemoExpiry(leads, demos, nil, notifyNow)
	assert.Empty(t, out)
}
