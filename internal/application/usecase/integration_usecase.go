package usecase

import (
	"context"

	"github.com/jhoicas/Leadflow-api/internal/application/dto"
	"github.com/jhoicas/Leadflow-api/internal/domain"
	"github.com/jhoicas/Leadflow-api/internal/domain/repository"
)

// IntegrationUseCase consulta de integraciones. Las altas y ediciones pasan
// por el motor de ciclo de vida.
type IntegrationUseCase struct {
	integrationRepo repository.IntegrationRepository
}

func NewIntegrationUseCase(integrationRepo repository.IntegrationRepository) *IntegrationUseCase {
	return &IntegrationUseCase{integrationRepo: integrationRepo}
}

// List integraciones con datos de contacto del lead.
func (uc *IntegrationUseCase) List(_ context.Context) ([]*dto.IntegrationResponse, error) {
	rows, err := uc.integrationRepo.ListWithLead()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.IntegrationResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, &dto.IntegrationResponse{
			ID:        row.ID,
			LeadID:    row.LeadID,
			LeadName:  row.LeadName,
			LeadPhone: row.LeadPhone,
			LeadEmail: row.LeadEmail,
			Status:    string(row.Status),
			StartDate: row.StartDate,
			EndDate:   row.EndDate,
			Feedback:  row.Feedback,
		})
	}
	return out, nil
}

// GetByID busca una integración por id.
func (uc *IntegrationUseCase) GetByID(_ context.Context, id string) (*dto.IntegrationResponse, error) {
	integration, err := uc.integrationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if integration == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.IntegrationResponse{
		ID:        integration.ID,
		LeadID:    integration.LeadID,
		Status:    string(integration.Status),
		StartDate: integration.StartDate,
		EndDate:   integration.EndDate,
		Feedback:  integration.Feedback,
	}, nil
}

// Delete elimina una integración.
func (uc *IntegrationUseCase) Delete(_ context.Context, id string) error {
	integration, err := uc.integrationRepo.GetByID(id)
	if err != nil {
		return err
	}
	if integration == nil {
		return domain.ErrNotFound
	}
	return uc.integrationRepo.Delete(id)
}
