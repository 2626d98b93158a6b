package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Leadflow-api/internal/application/lifecycle"
	"github.com/jhoicas/Leadflow-api/internal/domain/repository"
)

var _ lifecycle.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Las cascadas del ciclo de vida (lead + registro asociado
// + notificación) quedan todo-o-nada.
func (r *TxRunner) Run(ctx context.Context, fn func(
	leadRepo repository.LeadRepository,
	demoRepo repository.DemoRepository,
	integrationRepo repository.IntegrationRepository,
	paymentRepo repository.PaymentRepository,
	notifRepo repository.NotificationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	leadRepo := NewLeadRepository(tx)
	demoRepo := NewDemoRepository(tx)
	integrationRepo := NewIntegrationRepository(tx)
	paymentRepo := NewPaymentRepository(tx)
	notifRepo := NewNotificationRepository(tx)

	if err := fn(leadRepo, demoRepo, integrationRepo, paymentRepo, notifRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
