package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/Leadflow-api/internal/domain"
	"github.com/jhoicas/Leadflow-api/internal/domain/entity"
	"github.com/jhoicas/Leadflow-api/internal/domain/repository"
)

// NotificationRepository repositorio de notificaciones en memoria.
type NotificationRepository struct {
	mu    sync.RWMutex
	items map[string]*entity.Notification
	leads *LeadRepository
}

func NewNotificationRepository(leads *LeadRepository) *NotificationRepository {
	return &NotificationRepository{items: make(map[string]*entity.Notification), leads: leads}
}

func (r *NotificationRepository) Create(n *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *n
	r.items[n.ID] = &cp
	return nil
}

func (r *NotificationRepository) GetByID(id string) (*entity.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (r *NotificationRepository) List() ([]*repository.NotificationWithLead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*repository.NotificationWithLead, 0, len(r.items))
	for _, n := range r.items {
		row := &repository.NotificationWithLead{Notification: *n}
		if n.LeadID != "" {
			if lead, _ := r.leads.GetByID(n.LeadID); lead != nil {
				row.LeadName = lead.Name
			}
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *NotificationRepository) ListUnreadByType(t entity.NotificationType) ([]*entity.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Notification, 0)
	for _, n := range r.items {
		if n.Type == t && !n.Read {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *NotificationRepository) MarkRead(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	n.Read = true
	return nil
}

func (r *NotificationRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
