package lifecycle

import (
	"context"

	"github.com/jhoicas/Leadflow-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una transacción.
// Cada operación del ciclo de vida es todo-o-nada: o aplican todas sus
// escrituras (lead + sub-registro + notificación) o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		leadRepo repository.LeadRepository,
		demoRepo repository.DemoRepository,
		integrationRepo repository.IntegrationRepository,
		paymentRepo repository.PaymentRepository,
		notifRepo repository.NotificationRepository,
	) error) error
}
