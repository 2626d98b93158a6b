package memory

import (
	"context"

	"github.com/jhoicas/Leadflow-api/internal/domain/repository"
)

// Store agrupa los repositorios en memoria y hace de TxRunner. No hay
// transacción real: el callback recibe los mismos repositorios, y un error
// del callback simplemente se propaga (los cambios ya aplicados quedan).
// Suficiente para tests de casos de uso y para el modo de desarrollo.
type Store struct {
	Leads         *LeadRepository
	Demos         *DemoRepository
	Integrations  *IntegrationRepository
	Payments      *PaymentRepository
	Notifications *NotificationRepository
	Users         *UserRepository
}

// NewStore construye el juego completo de repositorios en memoria.
func NewStore() *Store {
	leads := NewLeadRepository()
	return &Store{
		Leads:         leads,
		Demos:         NewDemoRepository(leads),
		Integrations:  NewIntegrationRepository(leads),
		Payments:      NewPaymentRepository(leads),
		Notifications: NewNotificationRepository(leads),
		Users:         NewUserRepository(),
	}
}

// Run implementa lifecycle.TxRunner.
func (s *Store) Run(_ context.Context, fn func(
	leadRepo repository.LeadRepository,
	demoRepo repository.DemoRepository,
	integrationRepo repository.IntegrationRepository,
	paymentRepo repository.PaymentRepository,
	notifRepo repository.NotificationRepository,
) error) error {
	return fn(s.Leads, s.Demos, s.Integrations, s.Payments, s.Notifications)
}
