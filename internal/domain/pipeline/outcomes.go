// Package pipeline contiene la lógica pura del ciclo de vida de un lead:
// resultado de llamada → estado, ventana de vigencia de una demo, agregados
// del dashboard/embudo y reglas de generación de notificaciones.
//
// Todo aquí es función pura sobre valores; la persistencia y el HTTP viven en
// otras capas. Esta es la única fuente de verdad para las reglas del pipeline.
package pipeline

import "github.com/jhoicas/Leadflow-api/internal/domain/entity"

// CallOutcome resultado que el operador registra tras una llamada.
type CallOutcome string

// Resultados válidos de llamada.
const (
	CallNeedFollowup CallOutcome = "Need Followup"
	CallDemo         CallOutcome = "Demo"
	CallRejected     CallOutcome = "Rejected"
	CallIntegrated   CallOutcome = "Integrated"
)

// StatusForCallOutcome mapea el resultado de una llamada al estado resultante
// del lead. "Need Followup" colapsa a Contacted: tres acciones distintas del
// operador terminan en el mismo estado y la acción concreta solo queda en los
// remarks (comportamiento heredado del producto).
func StatusForCallOutcome(outcome CallOutcome) (entity.LeadStatus, bool) {
	switch outcome {
	case CallNeedFollowup:
		return entity.LeadStatusContacted, true
	case CallDemo:
		return entity.LeadStatusDemo, true
	case CallRejected:
		return entity.LeadStatusRejected, true
	case CallIntegrated:
		return entity.LeadStatusIntegrated, true
	}
	return "", false
}

// DemoOutcome resultado que el operador registra al cerrar una demo.
type DemoOutcome string

// Resultados válidos de demo.
const (
	DemoInterested   DemoOutcome = "interested"
	DemoNotResponded DemoOutcome = "not_responded"
	DemoFollowUp     DemoOutcome = "follow_up"
)

// StatusForDemoOutcome mapea el resultado de una demo al estado resultante.
// Interested avanza a Integrated (y dispara la creación de la integración);
// los otros dos regresan a Contacted.
func StatusForDemoOutcome(outcome DemoOutcome) (entity.LeadStatus, bool) {
	switch outcome {
	case DemoInterested:
		return entity.LeadStatusIntegrated, true
	case DemoNotResponded, DemoFollowUp:
		return entity.LeadStatusContacted, true
	}
	return "", false
}
