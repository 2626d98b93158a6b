package memory

import (
	"context"

	"github.com/jhoicas/Leadflow-api/internal/domain/pipeline"
)

// Snapshot implementa repository.AnalyticsRepository leyendo el estado
// completo de los repositorios en memoria.
func (s *Store) Snapshot(_ context.Context) (pipeline.Snapshot, error) {
	var snap pipeline.Snapshot
	leads, err := s.Leads.List()
	if err != nil {
		return snap, err
	}
	demos, err := s.Demos.List()
	if err != nil {
		return snap, err
	}
	integrations, err := s.Integrations.List()
	if err != nil {
		return snap, err
	}
	payments, err := s.Payments.List()
	if err != nil {
		return snap, err
	}
	snap.Leads = leads
	snap.Demos = demos
	snap.Integrations = integrations
	snap.Payments = payments
	return snap, nil
}
