// Package memory implementa los repositorios del dominio sobre mapas en
// memoria. Se usa en tests de casos de uso y como backend de desarrollo sin
// Postgres. Todas las operaciones son seguras para uso concurrente.
package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/Leadflow-api/internal/domain"
	"github.com/jhoicas/Leadflow-api/internal/domain/entity"
)

// LeadRepository repositorio de leads en memoria.
type LeadRepository struct {
	mu    sync.RWMutex
	leads map[string]*entity.Lead
}

// NewLeadRepository crea un repositorio vacío.
func NewLeadRepository() *LeadRepository {
	return &LeadRepository{leads: make(map[string]*entity.Lead)}
}

func (r *LeadRepository) Create(lead *entity.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.leads {
		if l.Phone == lead.Phone {
			return domain.ErrDuplicatePhone
		}
	}
	cp := *lead
	r.leads[lead.ID] = &cp
	return nil
}

func (r *LeadRepository) GetByID(id string) (*entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.leads[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *LeadRepository) GetByPhone(phone string) (*entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, l := range r.leads {
		if l.Phone == phone {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *LeadRepository) List() ([]*entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Lead, 0, len(r.leads))
	for _, l := range r.leads {
		cp := *l
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateAdded.After(out[j].DateAdded) })
	return out, nil
}

func (r *LeadRepository) ListByStatus(status entity.LeadStatus) ([]*entity.Lead, error) {
	all, _ := r.List()
	out := make([]*entity.Lead, 0, len(all))
	for _, l := range all {
		if l.Status == status {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *LeadRepository) Update(lead *entity.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.leads[lead.ID]; !ok {
		return domain.ErrLeadNotFound
	}
	cp := *lead
	r.leads[lead.ID] = &cp
	return nil
}

func (r *LeadRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.leads[id]; !ok {
		return domain.ErrLeadNotFound
	}
	delete(r.leads, id)
	return nil
}
