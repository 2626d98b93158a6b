package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Leadflow-api/internal/domain"
	"github.com/jhoicas/Leadflow-api/internal/domain/entity"
	"github.com/jhoicas/Leadflow-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// "read" es palabra reservada en SQL, siempre va entre comillas.
const notificationColumns = `id, type, title, message, lead_id, user_id, "read", created_at`

// NotificationRepo implementación de NotificationRepository sobre PostgreSQL (usable con pool o tx).
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository construye el adaptador de notificaciones. Pasar pool o tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persiste una notificación nueva.
func (r *NotificationRepo) Create(n *entity.Notification) error {
	query := `
		INSERT INTO notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		n.ID, string(n.Type), n.Title, n.Message, n.LeadID, n.UserID, n.Read, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// GetByID obtiene una notificación por ID. Sin fila retorna (nil, nil).
func (r *NotificationRepo) GetByID(id string) (*entity.Notification, error) {
	query := `
		SELECT id, type, title, message, COALESCE(lead_id, ''), COALESCE(user_id, ''), "read", created_at
		FROM notifications WHERE id = $1`
	var n entity.Notification
	var nType string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&n.ID, &nType, &n.Title, &n.Message, &n.LeadID, &n.UserID, &n.Read, &n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notification: %w", err)
	}
	n.Type = entity.NotificationType(nType)
	return &n, nil
}

// List notificaciones con el nombre del lead, más reciente primero.
func (r *NotificationRepo) List() ([]*repository.NotificationWithLead, error) {
	query := `
		SELECT n.id, n.type, n.title, n.message, COALESCE(n.lead_id, ''),
		       COALESCE(n.user_id, ''), n."read", n.created_at,
		       COALESCE(l.name, '')
		FROM notifications n
		LEFT JOIN leads l ON l.id = n.lead_id
		ORDER BY n.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var out []*repository.NotificationWithLead
	for rows.Next() {
		var row repository.NotificationWithLead
		var nType string
		if err := rows.Scan(
			&row.ID, &nType, &row.Title, &row.Message, &row.LeadID,
			&row.UserID, &row.Read, &row.CreatedAt, &row.LeadName,
		); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		row.Type = entity.NotificationType(nType)
		out = append(out, &row)
	}
	return out, rows.Err()
}

// ListUnreadByType notificaciones no leídas de un tipo; la usa el chequeo de
// demos por vencer para no duplicar avisos.
func (r *NotificationRepo) ListUnreadByType(t entity.NotificationType) ([]*entity.Notification, error) {
	query := `
		SELECT id, type, title, message, COALESCE(lead_id, ''), COALESCE(user_id, ''), "read", created_at
		FROM notifications WHERE type = $1 AND "read" = FALSE`
	rows, err := r.q.Query(context.Background(), query, string(t))
	if err != nil {
		return nil, fmt.Errorf("list unread notifications: %w", err)
	}
	defer rows.Close()

	var out []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		var nType string
		if err := rows.Scan(
			&n.ID, &nType, &n.Title, &n.Message, &n.LeadID, &n.UserID, &n.Read, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		n.Type = entity.NotificationType(nType)
		out = append(out, &n)
	}
	return out, rows.Err()
}

// MarkRead marca una notificación como leída.
func (r *NotificationRepo) MarkRead(id string) error {
	tag, err := r.q.Exec(context.Background(), `UPDATE notifications SET "read" = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una notificación.
func (r *NotificationRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM notifications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
