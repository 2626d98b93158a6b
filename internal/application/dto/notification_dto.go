package dto

import "time"

// CreateNotificationRequest cuerpo de POST /api/notifications (alta manual).
type CreateNotificationRequest struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	LeadID  string `json:"lead_id"`
	UserID  string `json:"user_id"`
}

// NotificationResponse representación de una notificación en la API.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	LeadID    string    `json:"lead_id,omitempty"`
	LeadName  string    `json:"lead_name,omitempty"`
	Read      bool      `json:"read"`
	Timestamp time.Time `json:"timestamp"`
}
