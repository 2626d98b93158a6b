package entity

import "time"

// NotificationType etiqueta de tipo de una notificación.
// El mapeo estado→tipo (Rejected→follow_up incluido) replica el comportamiento
// observado del producto; no "corregirlo".
type NotificationType string

// Tipos válidos de notificación.
const (
	NotifLeadAssigned        NotificationType = "lead_assigned"
	NotifDemoExpiry          NotificationType = "demo_expiry"
	NotifFollowUp            NotificationType = "follow_up"
	NotifIntegrationDeadline NotificationType = "integration_deadline"
	NotifPaymentReminder     NotificationType = "payment_reminder"
)

// Valid informa si el valor es un tipo de notificación conocido.
func (t NotificationType) Valid() bool {
	switch t {
	case NotifLeadAssigned, NotifDemoExpiry, NotifFollowUp,
		NotifIntegrationDeadline, NotifPaymentReminder:
		return true
	}
	return false
}

// Notification evento efímero mostrado al operador. Solo muta su flag Read;
// se elimina por acción explícita.
type Notification struct {
	ID        string
	Type      NotificationType
	Title     string
	Message   string
	LeadID    string // opcional, referencia al lead relacionado
	UserID    string // opcional
	Read      bool
	CreatedAt time.Time
}
