// Package usecase reúne los casos de uso de consulta y mantenimiento de los
// registros asociados al lead (demos, integraciones, pagos, notificaciones,
// usuarios). Las operaciones que mueven el estado del lead viven en
// application/lifecycle.
package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Leadflow-api/internal/application/dto"
	"github.com/jhoicas/Leadflow-api/internal/domain"
	"github.com/jhoicas/Leadflow-api/internal/domain/entity"
	"github.com/jhoicas/Leadflow-api/internal/domain/pipeline"
	"github.com/jhoicas/Leadflow-api/internal/domain/repository"
)

// DemoUseCase consulta y mantenimiento de demos.
type DemoUseCase struct {
	demoRepo repository.DemoRepository
}

func NewDemoUseCase(demoRepo repository.DemoRepository) *DemoUseCase {
	return &DemoUseCase{demoRepo: demoRepo}
}

// List demos con datos de contacto del lead y vigencia derivada.
func (uc *DemoUseCase) List(_ context.Context) ([]*dto.DemoResponse, error) {
	rows, err := uc.demoRepo.ListWithLead()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := make([]*dto.DemoResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, demoRowToResponse(row, now))
	}
	return out, nil
}

// GetByID busca una demo por id.
func (uc *DemoUseCase) GetByID(_ context.Context, id string) (*dto.DemoResponse, error) {
	demo, err := uc.demoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if demo == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	return demoRowToResponse(&repository.DemoWithLead{Demo: *demo}, now), nil
}

// Update edición libre de la demo; no toca el estado del lead.
func (uc *DemoUseCase) Update(_ context.Context, id string, in dto.UpdateDemoRequest) (*dto.DemoResponse, error) {
	demo, err := uc.demoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if demo == nil {
		return nil, domain.ErrNotFound
	}
	if in.DemoType != "" {
		t := entity.DemoType(in.DemoType)
		if !t.Valid() {
			return nil, domain.ErrInvalidInput
		}
		demo.Type = t
	}
	if in.StartDate != "" {
		start, err := parseDate(in.StartDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		demo.StartDate = start
	}
	if in.EndDate != "" {
		end, err := parseDate(in.EndDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		demo.EndDate = end
	}
	if in.Status != "" {
		demo.Status = in.Status
	}
	if in.Remarks != "" {
		demo.Remarks = in.Remarks
	}
	if in.Feedback != "" {
		demo.Feedback = in.Feedback
	}
	demo.UpdatedAt = time.Now()
	if err := uc.demoRepo.Update(demo); err != nil {
		return nil, err
	}
	return demoRowToResponse(&repository.DemoWithLead{Demo: *demo}, time.Now()), nil
}

// Delete elimina una demo.
func (uc *DemoUseCase) Delete(_ context.Context, id string) error {
	demo, err := uc.demoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if demo == nil {
		return domain.ErrNotFound
	}
	return uc.demoRepo.Delete(id)
}

func demoRowToResponse(row *repository.DemoWithLead, now time.Time) *dto.DemoResponse {
	w := pipeline.Window(&row.Demo, now)
	return &dto.DemoResponse{
		ID:            row.ID,
		LeadID:        row.LeadID,
		LeadName:      row.LeadName,
		LeadPhone:     row.LeadPhone,
		LeadEmail:     row.LeadEmail,
		DemoType:      string(row.Type),
		StartDate:     row.StartDate,
		EndDate:       row.EndDate,
		Status:        row.Status,
		Remarks:       row.Remarks,
		Feedback:      row.Feedback,
		DaysRemaining: w.DaysRemaining,
		Expired:       w.Expired,
	}
}

// parseDate acepta RFC3339 o fecha simple YYYY-MM-DD.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
