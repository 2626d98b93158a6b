package repository

import "github.com/jhoicas/Leadflow-api/internal/domain/entity"

// NotificationWithLead fila de listado de notificaciones con el nombre del
// lead relacionado (vacío si la notificación no referencia un lead).
type NotificationWithLead struct {
	entity.Notification
	LeadName string
}

// NotificationRepository define el puerto de persistencia para Notification.
type NotificationRepository interface {
	Create(n *entity.Notification) error
	GetByID(id string) (*entity.Notification, error)
	List() ([]*NotificationWithLead, error)
	ListUnreadByType(t entity.NotificationType) ([]*entity.Notification, error)
	MarkRead(id string) error
	Delete(id string) error
}
