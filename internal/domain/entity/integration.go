package entity

import "time"

// IntegrationStatus estado de la fase de integración post-demo.
type IntegrationStatus string

// Estados válidos de integración.
const (
	IntegrationStarted   IntegrationStatus = "Started"
	IntegrationCompleted IntegrationStatus = "Completed"
)

// Valid informa si el valor es un estado de integración conocido.
func (s IntegrationStatus) Valid() bool {
	return s == IntegrationStarted || s == IntegrationCompleted
}

// Integration fase de onboarding de un lead (entre demo y pago).
// Pertenece a exactamente un lead.
type Integration struct {
	ID        string
	LeadID    string
	Status    IntegrationStatus
	StartDate time.Time
	EndDate   *time.Time
	Feedback  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
