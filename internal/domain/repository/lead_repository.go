package repository

import "github.com/jhoicas/Leadflow-api/internal/domain/entity"

// LeadRepository define el puerto de persistencia para Lead.
// Create debe retornar domain.ErrDuplicatePhone si el teléfono ya existe
// (el teléfono es la clave natural de deduplicación).
type LeadRepository interface {
	Create(lead *entity.Lead) error
	GetByID(id string) (*entity.Lead, error)
	GetByPhone(phone string) (*entity.Lead, error)
	List() ([]*entity.Lead, error)
	ListByStatus(status entity.LeadStatus) ([]*entity.Lead, error)
	Update(lead *entity.Lead) error
	Delete(id string) error
}
