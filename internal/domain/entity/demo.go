package entity

import "time"

// DemoType tipo de demostración ofrecida a un lead.
type DemoType string

// Tipos válidos de demo.
const (
	DemoTypeVideo DemoType = "Video"
	DemoTypeLive  DemoType = "Live"
	DemoTypeTrial DemoType = "Trial"
)

// Valid informa si el valor es un tipo de demo conocido.
func (t DemoType) Valid() bool {
	switch t {
	case DemoTypeVideo, DemoTypeLive, DemoTypeTrial:
		return true
	}
	return false
}

// Estados de Demo (el estado del sub-registro, no del lead).
const (
	DemoStatusScheduled = "Scheduled"
	DemoStatusCompleted = "Completed"
	DemoStatusExpired   = "Expired"
)

// Demo período de demostración asignado a un lead. Un lead tiene a lo sumo
// una demo activa; una asignación nueva reemplaza la anterior.
type Demo struct {
	ID        string
	LeadID    string
	Type      DemoType
	StartDate time.Time
	EndDate   time.Time // StartDate + duración en días
	Status    string
	Remarks   string
	Feedback  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
