package dto

import "time"

// AssignDemoRequest cuerpo de POST /api/demos: asigna una demo a un lead.
type AssignDemoRequest struct {
	LeadID       string `json:"lead_id"`
	DemoType     string `json:"demo_type"` // Video | Live | Trial
	StartDate    string `json:"start_date"`
	DurationDays int    `json:"duration_days"`
	Remarks      string `json:"remarks"`
}

// DemoOutcomeRequest cuerpo de POST /api/demos/:id/outcome.
type DemoOutcomeRequest struct {
	Outcome string `json:"outcome"` // interested | not_responded | follow_up
}

// UpdateDemoRequest cuerpo de PUT /api/demos/:id.
type UpdateDemoRequest struct {
	DemoType  string `json:"demo_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
	Remarks   string `json:"remarks"`
	Feedback  string `json:"feedback"`
}

// DemoResponse representación de una demo con su vigencia derivada y los
// datos de contacto del lead.
type DemoResponse struct {
	ID            string    `json:"id"`
	LeadID        string    `json:"lead_id"`
	LeadName      string    `json:"lead_name,omitempty"`
	LeadPhone     string    `json:"lead_phone,omitempty"`
	LeadEmail     string    `json:"lead_email,omitempty"`
	DemoType      string    `json:"demo_type"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Status        string    `json:"status"`
	Remarks       string    `json:"remarks,omitempty"`
	Feedback      string    `json:"feedback,omitempty"`
	DaysRemaining int       `json:"days_remaining"`
	Expired       bool      `json:"expired"`
}
