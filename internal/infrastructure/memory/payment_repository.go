package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/Leadflow-api/internal/domain"
	"github.com/jhoicas/Leadflow-api/internal/domain/entity"
	"github.com/jhoicas/Leadflow-api/internal/domain/repository"
)

// PaymentRepository repositorio de pagos en memoria.
type PaymentRepository struct {
	mu    sync.RWMutex
	items map[string]*entity.Payment
	leads *LeadRepository
}

func NewPaymentRepository(leads *LeadRepository) *PaymentRepository {
	return &PaymentRepository{items: make(map[string]*entity.Payment), leads: leads}
}

func (r *PaymentRepository) Create(payment *entity.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *payment
	r.items[payment.ID] = &cp
	return nil
}

func (r *PaymentRepository) GetByID(id string) (*entity.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *PaymentRepository) List() ([]*entity.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Payment, 0, len(r.items))
	for _, p := range r.items {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaymentDate.After(out[j].PaymentDate) })
	return out, nil
}

func (r *PaymentRepository) ListWithLead() ([]*repository.PaymentWithLead, error) {
	items, _ := r.List()
	out := make([]*repository.PaymentWithLead, 0, len(items))
	for _, p := range items {
		row := &repository.PaymentWithLead{Payment: *p}
		if lead, _ := r.leads.GetByID(p.LeadID); lead != nil {
			row.LeadName = lead.Name
			row.LeadPhone = lead.Phone
			row.LeadEmail = lead.Email
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *PaymentRepository) Update(payment *entity.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[payment.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *payment
	r.items[payment.ID] = &cp
	return nil
}

func (r *PaymentRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
