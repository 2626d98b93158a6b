package dto

import "time"

// StartIntegrationRequest cuerpo de POST /api/integrations.
type StartIntegrationRequest struct {
	LeadID    string `json:"lead_id"`
	StartDate string `json:"start_date"` // opcional, default now
	Feedback  string `json:"feedback"`
}

// UpdateIntegrationRequest cuerpo de PUT /api/integrations/:id.
type UpdateIntegrationRequest struct {
	Status    string `json:"status"` // Started | Completed
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Feedback  string `json:"feedback"`
}

// IntegrationResponse representación de una integración en la API.
type IntegrationResponse struct {
	ID        string     `json:"id"`
	LeadID    string     `json:"lead_id"`
	LeadName  string     `json:"lead_name,omitempty"`
	LeadPhone string     `json:"lead_phone,omitempty"`
	LeadEmail string     `json:"lead_email,omitempty"`
	Status    string     `json:"status"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Feedback  string     `json:"feedback,omitempty"`
}
