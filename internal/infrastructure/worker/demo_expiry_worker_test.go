package worker_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Leadflow-api/internal/domain/entity"
	"github.com/jhoicas/Leadflow-api/internal/infrastructure/memory"
	"github.com/jhoicas/Leadflow-api/internal/infrastructure/worker"
	"github.com/jhoicas/Leadflow-api/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.Nop()
}

func seed(t *testing.T, store *memory.Store, name string, endIn time.Duration) *entity.Lead {
	t.Helper()
	now := time.Now()
	lead := &entity.Lead{
		ID: uuid.New().String(), Name: name, Phone: name,
		Status: entity.LeadStatusDemo, DateAdded: now,
	}
	require.NoError(t, store.Leads.Create(lead))
	require.NoError(t, store.Demos.ReplaceForLead(&entity.Demo{
		ID: uuid.New().String(), LeadID: lead.ID, Type: entity.DemoTypeTrial,
		StartDate: now.Add(-24 * time.Hour), EndDate: now.Add(endIn),
		Status: entity.DemoStatusScheduled,
	}))
	return lead
}

func TestRunOnce_NotificaSoloDemosPorVencer(t *testing.T) {
	store := memory.NewStore()
	seed(t, store, "PorVencer", 6*time.Hour)
	seed(t, store, "Lejana", 10*24*time.Hour)
	seed(t, store, "YaVencida", -time.Hour)

	w := worker.NewDemoExpiryWorker(store.Leads, store.Demos, store.Notifications, time.Hour, testLogger())

	created, err := w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	unread, err := store.Notifications.ListUnreadByType(entity.NotifDemoExpiry)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Contains(t, unread[0].Message, "PorVencer")
}

func TestRunOnce_NoDuplicaAvisosNoLeidos(t *testing.T) {
	store := memory.NewStore()
	seed(t, store, "PorVencer", 6*time.Hour)

	w := worker.NewDemoExpiryWorker(store.Leads, store.Demos, store.Notifications, time.Hour, testLogger())

	created, err := w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	// segunda pasada con el aviso aún sin leer: nada nuevo
	created, err = w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, created)
}

func TestRunOnce_AvisoLeidoPermiteReNotificar(t *testing.T) {
	store := memory.NewStore()
	seed(t, store, "PorVencer", 6*time.Hour)

	w := worker.NewDemoExpiryWorker(store.Leads, store.Demos, store.Notifications, time.Hour, testLogger())

	_, err := w.RunOnce(context.Background())
	require.NoError(t, err)

	unread, err := store.Notifications.ListUnreadByType(entity.NotifDemoExpiry)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	require.NoError(t, store.Notifications.MarkRead(unread[0].ID))

	created, err := w.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestStart_SeDetieneConElContexto(t *testing.T) {
	store := memory.NewStore()
	w := worker.NewDemoExpiryWorker(store.Leads, store.Demos, store.Notifications, 10*time.Millisecond, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("el worker no se detuvo al cancelar el contexto")
	}
}
