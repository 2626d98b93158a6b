package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Leadflow-api/internal/application/dto"
	"github.com/jhoicas/Leadflow-api/internal/domain"
	"github.com/jhoicas/Leadflow-api/internal/domain/entity"
	"github.com/jhoicas/Leadflow-api/internal/domain/repository"
)

// NotificationUseCase bandeja de notificaciones del operador.
type NotificationUseCase struct {
	notifRepo repository.NotificationRepository
}

func NewNotificationUseCase(notifRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifRepo: notifRepo}
}

// List todas las notificaciones, más reciente primero.
func (uc *NotificationUseCase) List(_ context.Context) ([]*dto.NotificationResponse, error) {
	rows, err := uc.notifRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.NotificationResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, &dto.NotificationResponse{
			ID:        row.ID,
			Type:      string(row.Type),
			Title:     row.Title,
			Message:   row.Message,
			LeadID:    row.LeadID,
			LeadName:  row.LeadName,
			Read:      row.Read,
			Timestamp: row.CreatedAt,
		})
	}
	return out, nil
}

// Create alta manual de una notificación.
func (uc *NotificationUseCase) Create(_ context.Context, in dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	t := entity.NotificationType(in.Type)
	if !t.Valid() || in.Message == "" {
		return nil, domain.ErrInvalidInput
	}
	n := &entity.Notification{
		ID:        uuid.New().String(),
		Type:      t,
		Title:     in.Title,
		Message:   in.Message,
		LeadID:    in.LeadID,
		UserID:    in.UserID,
		CreatedAt: time.Now(),
	}
	if err := uc.notifRepo.Create(n); err != nil {
		return nil, err
	}
	return &dto.NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		LeadID:    n.LeadID,
		Read:      n.Read,
		Timestamp: n.CreatedAt,
	}, nil
}

// MarkRead marca una notificación como leída. Idempotente.
func (uc *NotificationUseCase) MarkRead(_ context.Context, id string) error {
	n, err := uc.notifRepo.GetByID(id)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	return uc.notifRepo.MarkRead(id)
}

// Delete elimina una notificación.
func (uc *NotificationUseCase) Delete(_ context.Context, id string) error {
	n, err := uc.notifRepo.GetByID(id)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	return uc.notifRepo.Delete(id)
}
