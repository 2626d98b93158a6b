package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/Leadflow-api/internal/domain"
	"github.com/jhoicas/Leadflow-api/internal/domain/entity"
	"github.com/jhoicas/Leadflow-api/internal/domain/repository"
)

// IntegrationRepository repositorio de integraciones en memoria.
type IntegrationRepository struct {
	mu    sync.RWMutex
	items map[string]*entity.Integration
	leads *LeadRepository
}

func NewIntegrationRepository(leads *LeadRepository) *IntegrationRepository {
	return &IntegrationRepository{items: make(map[string]*entity.Integration), leads: leads}
}

func (r *IntegrationRepository) Create(integration *entity.Integration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *integration
	r.items[integration.ID] = &cp
	return nil
}

func (r *IntegrationRepository) GetByID(id string) (*entity.Integration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (r *IntegrationRepository) GetByLeadID(leadID string) (*entity.Integration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, i := range r.items {
		if i.LeadID == leadID {
			cp := *i
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *IntegrationRepository) List() ([]*entity.Integration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Integration, 0, len(r.items))
	for _, i := range r.items {
		cp := *i
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

func (r *IntegrationRepository) ListWithLead() ([]*repository.IntegrationWithLead, error) {
	items, _ := r.List()
	out := make([]*repository.IntegrationWithLead, 0, len(items))
	for _, i := range items {
		row := &repository.IntegrationWithLead{Integration: *i}
		if lead, _ := r.leads.GetByID(i.LeadID); lead != nil {
			row.LeadName = lead.Name
			row.LeadPhone = lead.Phone
			row.LeadEmail = lead.Email
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *IntegrationRepository) Update(integration *entity.Integration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[integration.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *integration
	r.items[integration.ID] = &cp
	return nil
}

func (r *IntegrationRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
