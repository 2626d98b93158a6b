package repository

import "github.com/jhoicas/Leadflow-api/internal/domain/entity"

// DemoWithLead fila de listado de demos con los datos de contacto del lead.
type DemoWithLead struct {
	entity.Demo
	LeadName  string
	LeadPhone string
	LeadEmail string
}

// DemoRepository define el puerto de persistencia para Demo.
// Un lead tiene a lo sumo una demo: ReplaceForLead inserta o reemplaza la
// demo existente del lead en una sola operación.
type DemoRepository interface {
	ReplaceForLead(demo *entity.Demo) error
	GetByID(id string) (*entity.Demo, error)
	GetByLeadID(leadID string) (*entity.Demo, error)
	List() ([]*entity.Demo, error)
	ListWithLead() ([]*DemoWithLead, error)
	Update(demo *entity.Demo) error
	Delete(id string) error
}
