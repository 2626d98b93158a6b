package repository

import "github.com/jhoicas/Leadflow-api/internal/domain/entity"

// IntegrationWithLead fila de listado de integraciones con datos del lead.
type IntegrationWithLead struct {
	entity.Integration
	LeadName  string
	LeadPhone string
	LeadEmail string
}

// IntegrationRepository define el puerto de persistencia para Integration.
type IntegrationRepository interface {
	Create(integration *entity.Integration) error
	GetByID(id string) (*entity.Integration, error)
	GetByLeadID(leadID string) (*entity.Integration, error)
	List() ([]*entity.Integration, error)
	ListWithLead() ([]*IntegrationWithLead, error)
	Update(integration *entity.Integration) error
	Delete(id string) error
}
