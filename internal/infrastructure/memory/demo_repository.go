package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/Leadflow-api/internal/domain"
	"github.com/jhoicas/Leadflow-api/internal/domain/entity"
	"github.com/jhoicas/Leadflow-api/internal/domain/repository"
)

// DemoRepository repositorio de demos en memoria. El join con el lead se
// resuelve contra el LeadRepository que se le pasa al construirlo.
type DemoRepository struct {
	mu    sync.RWMutex
	demos map[string]*entity.Demo
	leads *LeadRepository
}

func NewDemoRepository(leads *LeadRepository) *DemoRepository {
	return &DemoRepository{demos: make(map[string]*entity.Demo), leads: leads}
}

// ReplaceForLead elimina cualquier demo previa del lead antes de insertar la
// nueva: un lead tiene a lo sumo una demo vigente.
func (r *DemoRepository) ReplaceForLead(demo *entity.Demo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, d := range r.demos {
		if d.LeadID == demo.LeadID {
			delete(r.demos, id)
		}
	}
	cp := *demo
	r.demos[demo.ID] = &cp
	return nil
}

func (r *DemoRepository) GetByID(id string) (*entity.Demo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.demos[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *DemoRepository) GetByLeadID(leadID string) (*entity.Demo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.demos {
		if d.LeadID == leadID {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *DemoRepository) List() ([]*entity.Demo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Demo, 0, len(r.demos))
	for _, d := range r.demos {
		cp := *d
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EndDate.Before(out[j].EndDate) })
	return out, nil
}

func (r *DemoRepository) ListWithLead() ([]*repository.DemoWithLead, error) {
	demos, _ := r.List()
	out := make([]*repository.DemoWithLead, 0, len(demos))
	for _, d := range demos {
		row := &repository.DemoWithLead{Demo: *d}
		if lead, _ := r.leads.GetByID(d.LeadID); lead != nil {
			row.LeadName = lead.Name
			row.LeadPhone = lead.Phone
			row.LeadEmail = lead.Email
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *DemoRepository) Update(demo *entity.Demo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.demos[demo.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *demo
	r.demos[demo.ID] = &cp
	return nil
}

func (r *DemoRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.demos[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.demos, id)
	return nil
}
