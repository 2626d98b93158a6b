package dto

import "time"

// CreateLeadRequest cuerpo de POST /api/leads.
type CreateLeadRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Source   string `json:"source"`
	Campaign string `json:"campaign"`
	Remarks  string `json:"remarks"`
}

// UpdateLeadRequest cuerpo de PUT /api/leads/:id. Actualización completa al
// estilo del panel maestro: todos los campos editables viajan siempre.
type UpdateLeadRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Source   string `json:"source"`
	Campaign string `json:"campaign"`
	Status   string `json:"status"`
	Remarks  string `json:"remarks"`
}

// RecordCallRequest cuerpo de POST /api/leads/:id/call (panel de llamadas).
type RecordCallRequest struct {
	Outcome string `json:"outcome"` // Need Followup | Demo | Rejected | Integrated
	Remarks string `json:"remarks"`
}

// LeadResponse representación de un lead en la API.
type LeadResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Source       string     `json:"source"`
	Campaign     string     `json:"campaign"`
	Status       string     `json:"status"`
	Remarks      string     `json:"remarks,omitempty"`
	LastResponse *time.Time `json:"last_response,omitempty"`
	DateAdded    time.Time  `json:"date_added"`
}

// ImportRow renglón crudo de una planilla de leads (antes de validar).
type ImportRow struct {
	Name     string
	Email    string
	Phone    string
	Source   string
	Campaign string
}

// ImportResult resumen de una carga masiva.
type ImportResult struct {
	Imported int `json:"imported"` // leads creados
	Skipped  int `json:"skipped"`  // renglones inválidos o con teléfono duplicado
}
