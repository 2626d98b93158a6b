// Package leads implementa el CRUD de leads y la carga/descarga masiva por
// planilla. La deduplicación usa el teléfono como clave natural.
package leads

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Leadflow-api/internal/application/dto"
	"github.com/jhoicas/Leadflow-api/internal/application/lifecycle"
	"github.com/jhoicas/Leadflow-api/internal/domain"
	"github.com/jhoicas/Leadflow-api/internal/domain/entity"
	"github.com/jhoicas/Leadflow-api/internal/domain/pipeline"
	"github.com/jhoicas/Leadflow-api/internal/domain/repository"
)

// Valores por defecto cuando la planilla no trae la columna.
const (
	defaultImportSource   = "Excel Import"
	defaultImportCampaign = "Default Campaign"
)

// UseCase casos de uso de leads.
type UseCase struct {
	leadRepo  repository.LeadRepository
	notifRepo repository.NotificationRepository
	tx        lifecycle.TxRunner
	codec     SpreadsheetCodec
}

// NewUseCase construye el caso de uso.
func NewUseCase(leadRepo repository.LeadRepository, notifRepo repository.NotificationRepository, tx lifecycle.TxRunner, codec SpreadsheetCodec) *UseCase {
	return &UseCase{leadRepo: leadRepo, notifRepo: notifRepo, tx: tx, codec: codec}
}

// Create da de alta un lead manual en estado New y emite la notificación de
// alta. Teléfono repetido retorna ErrDuplicatePhone.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	if name == "" || phone == "" {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.LeadResponse
	err := uc.tx.Run(ctx, func(
		leadRepo repository.LeadRepository,
		_ repository.DemoRepository,
		_ repository.IntegrationRepository,
		_ repository.PaymentRepository,
		notifRepo repository.NotificationRepository,
	) error {
		now := time.Now()
		lead := &entity.Lead{
			ID:        uuid.New().String(),
			Name:      name,
			Email:     strings.TrimSpace(in.Email),
			Phone:     phone,
			Source:    in.Source,
			Campaign:  in.Campaign,
			Status:    entity.LeadStatusNew,
			Remarks:   in.Remarks,
			DateAdded: now,
			UpdatedAt: now,
		}
		if err := leadRepo.Create(lead); err != nil {
			return err
		}
		if n := pipeline.BuildLeadAddedNotification(lead, now); n != nil {
			if err := notifRepo.Create(n); err != nil {
				return err
			}
		}
		out = leadToResponse(lead)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID busca un lead por id.
func (uc *UseCase) GetByID(_ context.Context, id string) (*dto.LeadResponse, error) {
	lead, err := uc.leadRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.ErrLeadNotFound
	}
	return leadToResponse(lead), nil
}

// List lista todos los leads, opcionalmente filtrados por estado.
func (uc *UseCase) List(_ context.Context, status string) ([]*dto.LeadResponse, error) {
	var (
		leads []*entity.Lead
		err   error
	)
	if status != "" {
		s := entity.LeadStatus(status)
		if !s.Valid() {
			return nil, domain.ErrInvalidInput
		}
		leads, err = uc.leadRepo.ListByStatus(s)
	} else {
		leads, err = uc.leadRepo.List()
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LeadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, leadToResponse(l))
	}
	return out, nil
}

// Update edición completa desde el panel maestro. Si el estado cambia, emite
// la notificación de cambio de estado en la misma transacción.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	if in.Status != "" && !entity.LeadStatus(in.Status).Valid() {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.LeadResponse
	err := uc.tx.Run(ctx, func(
		leadRepo repository.LeadRepository,
		_ repository.DemoRepository,
		_ repository.IntegrationRepository,
		_ repository.PaymentRepository,
		notifRepo repository.NotificationRepository,
	) error {
		lead, err := leadRepo.GetByID(id)
		if err != nil {
			return err
		}
		if lead == nil {
			return domain.ErrLeadNotFound
		}
		now := time.Now()
		previous := lead.Status

		if in.Name != "" {
			lead.Name = in.Name
		}
		if in.Email != "" {
			lead.Email = in.Email
		}
		if in.Phone != "" {
			lead.Phone = in.Phone
		}
		if in.Source != "" {
			lead.Source = in.Source
		}
		if in.Campaign != "" {
			lead.Campaign = in.Campaign
		}
		if in.Remarks != "" {
			lead.Remarks = in.Remarks
		}
		if in.Status != "" {
			lead.Status = entity.LeadStatus(in.Status)
		}
		lead.UpdatedAt = now
		if err := leadRepo.Update(lead); err != nil {
			return err
		}
		if lead.Status != previous {
			if n := pipeline.BuildStatusChangeNotification(lead, lead.Status, now); n != nil {
				if err := notifRepo.Create(n); err != nil {
					return err
				}
			}
		}
		out = leadToResponse(lead)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina un lead y, por cascada del store, sus registros asociados.
func (uc *UseCase) Delete(_ context.Context, id string) error {
	lead, err := uc.leadRepo.GetByID(id)
	if err != nil {
		return err
	}
	if lead == nil {
		return domain.ErrLeadNotFound
	}
	return uc.leadRepo.Delete(id)
}

// Import carga masiva desde una planilla. Renglones sin nombre o teléfono se
// descartan; teléfonos ya vistos (en el lote o en el store) también. Al final
// se emite una sola notificación con el total importado. Todo o nada.
func (uc *UseCase) Import(ctx context.Context, r io.Reader) (*dto.ImportResult, error) {
	rows, err := uc.codec.ParseLeads(r)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	result := &dto.ImportResult{}
	err = uc.tx.Run(ctx, func(
		leadRepo repository.LeadRepository,
		_ repository.DemoRepository,
		_ repository.IntegrationRepository,
		_ repository.PaymentRepository,
		notifRepo repository.NotificationRepository,
	) error {
		now := time.Now()
		seen := make(map[string]bool, len(rows))
		for i, row := range rows {
			name := strings.TrimSpace(row.Name)
			phone := strings.TrimSpace(row.Phone)
			if name == "" || phone == "" || seen[phone] {
				result.Skipped++
				continue
			}
			existing, err := leadRepo.GetByPhone(phone)
			if err != nil {
				return err
			}
			if existing != nil {
				result.Skipped++
				continue
			}
			seen[phone] = true

			// filas sin email reciben un placeholder único para no dejar
			// el campo vacío en la planilla exportada
			email := strings.TrimSpace(row.Email)
			if email == "" {
				email = fmt.Sprintf("lead%d%d@placeholder.com", now.UnixMilli(), i)
			}

			lead := &entity.Lead{
				ID:        uuid.New().String(),
				Name:      name,
				Email:     email,
				Phone:     phone,
				Source:    coalesce(row.Source, defaultImportSource),
				Campaign:  coalesce(row.Campaign, defaultImportCampaign),
				Status:    entity.LeadStatusNew,
				DateAdded: now,
				UpdatedAt: now,
			}
			if err := leadRepo.Create(lead); err != nil {
				return err
			}
			result.Imported++
		}
		if n := pipeline.BuildImportNotification(result.Imported, now); n != nil {
			if err := notifRepo.Create(n); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Export serializa todos los leads a una planilla descargable.
func (uc *UseCase) Export(_ context.Context) ([]byte, error) {
	leads, err := uc.leadRepo.List()
	if err != nil {
		return nil, err
	}
	return uc.codec.Export(leads)
}

// Template devuelve la planilla vacía de importación.
func (uc *UseCase) Template(_ context.Context) ([]byte, error) {
	return uc.codec.Template()
}

func coalesce(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

func leadToResponse(l *entity.Lead) *dto.LeadResponse {
	return &dto.LeadResponse{
		ID:           l.ID,
		Name:         l.Name,
		Email:        l.Email,
		Phone:        l.Phone,
		Source:       l.Source,
		Campaign:     l.Campaign,
		Status:       string(l.Status),
		Remarks:      l.Remarks,
		LastResponse: l.LastResponse,
		DateAdded:    l.DateAdded,
	}
}
