// Package worker contiene los procesos periódicos de la aplicación.
package worker

import (
	"context"
	"time"

	"github.com/jhoicas/Leadflow-api/internal/domain/entity"
	"github.com/jhoicas/Leadflow-api/internal/domain/pipeline"
	"github.com/jhoicas/Leadflow-api/internal/domain/repository"
	"github.com/jhoicas/Leadflow-api/pkg/logger"
)

// DemoExpiryWorker revisa periódicamente las demos por vencer y genera las
// notificaciones demo_expiry que el frontend muestra al operador. La regla de
// qué demo amerita aviso vive en pipeline.CheckDemoExpiry; acá solo se
// orquesta el ciclo y la persistencia.
type DemoExpiryWorker struct {
	leadRepo  repository.LeadRepository
	demoRepo  repository.DemoRepository
	notifRepo repository.NotificationRepository
	tick      time.Duration
	log       *logger.Logger
}

// NewDemoExpiryWorker construye el worker.
func NewDemoExpiryWorker(
	leadRepo repository.LeadRepository,
	demoRepo repository.DemoRepository,
	notifRepo repository.NotificationRepository,
	tick time.Duration,
	log *logger.Logger,
) *DemoExpiryWorker {
	if tick <= 0 {
		tick = time.Hour
	}
	return &DemoExpiryWorker{
		leadRepo:  leadRepo,
		demoRepo:  demoRepo,
		notifRepo: notifRepo,
		tick:      tick,
		log:       log.Component("worker"),
	}
}

// Start corre el ciclo hasta que el contexto se cancele. Hace una pasada
// inmediata al arrancar para no esperar el primer tick.
func (w *DemoExpiryWorker) Start(ctx context.Context) {
	w.log.Info().Dur("tick", w.tick).Msg("demo expiry worker iniciado")

	ticker := time.NewTicker(w.tick)
	defer ticker.Stop()

	w.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("demo expiry worker detenido")
			return
		case <-ticker.C:
			w.runOnce(ctx)
		}
	}
}

// RunOnce ejecuta una sola pasada; lo usa también el endpoint de chequeo
// manual para que el operador fuerce la revisión.
func (w *DemoExpiryWorker) RunOnce(ctx context.Context) (int, error) {
	return w.check(ctx)
}

func (w *DemoExpiryWorker) runOnce(ctx context.Context) {
	created, err := w.check(ctx)
	if err != nil {
		w.log.Error().Err(err).Msg("chequeo de demos por vencer falló")
		return
	}
	if created > 0 {
		w.log.Info().Int("notificaciones", created).Msg("demos por vencer notificadas")
	}
}

func (w *DemoExpiryWorker) check(_ context.Context) (int, error) {
	leads, err := w.leadRepo.ListByStatus(entity.LeadStatusDemo)
	if err != nil {
		return 0, err
	}
	demos, err := w.demoRepo.List()
	if err != nil {
		return 0, err
	}
	existing, err := w.notifRepo.ListUnreadByType(entity.NotifDemoExpiry)
	if err != nil {
		return 0, err
	}

	notices := pipeline.CheckDemoExpiry(leads, demos, existing, time.Now())
	for _, n := range notices {
		if err := w.notifRepo.Create(n); err != nil {
			return 0, err
		}
	}
	return len(notices), nil
}
