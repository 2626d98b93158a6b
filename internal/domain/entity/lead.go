package entity

import "time"

// LeadStatus estado de un lead dentro del pipeline de ventas.
// El grafo de transiciones es abierto: cualquier estado puede alcanzarse desde
// cualquier otro mediante las operaciones del ciclo de vida (decisión heredada
// del producto, no agregar guardas de avance-solamente).
type LeadStatus string

// Estados válidos de Lead.
const (
	LeadStatusNew        LeadStatus = "New"
	LeadStatusContacted  LeadStatus = "Contacted"
	LeadStatusRejected   LeadStatus = "Rejected"
	LeadStatusDemo       LeadStatus = "Demo"
	LeadStatusIntegrated LeadStatus = "Integrated"
	LeadStatusPaid       LeadStatus = "Paid"
	LeadStatusUnpaid     LeadStatus = "Unpaid"
)

// Valid informa si el valor es uno de los siete estados definidos.
func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusRejected, LeadStatusDemo,
		LeadStatusIntegrated, LeadStatusPaid, LeadStatusUnpaid:
		return true
	}
	return false
}

// Lead representa un prospecto rastreado en el pipeline de ventas.
// El teléfono es la clave natural para detección de duplicados en la carga.
type Lead struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	Source       string
	Campaign     string
	Status       LeadStatus
	Remarks      string
	LastResponse *time.Time // última respuesta registrada por el operador
	DateAdded    time.Time  // inmutable desde la creación
	UpdatedAt    time.Time
}
