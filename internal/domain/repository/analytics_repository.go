package repository

import (
	"context"

	"github.com/jhoicas/Leadflow-api/internal/domain/pipeline"
)

// AnalyticsRepository consultas read-only para construir el snapshot del
// pipeline. Los agregados se computan en memoria (pipeline.Compute*) sobre el
// snapshot, nunca con contadores mutables compartidos; el repositorio solo
// garantiza lecturas consistentes con lo ya confirmado.
type AnalyticsRepository interface {
	Snapshot(ctx context.Context) (pipeline.Snapshot, error)
}
