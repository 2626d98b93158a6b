package repository

import "github.com/jhoicas/Leadflow-api/internal/domain/entity"

// PaymentWithLead fila de listado de pagos con datos del lead.
type PaymentWithLead struct {
	entity.Payment
	LeadName  string
	LeadPhone string
	LeadEmail string
}

// PaymentRepository define el puerto de persistencia para Payment.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	List() ([]*entity.Payment, error)
	ListWithLead() ([]*PaymentWithLead, error)
	Update(payment *entity.Payment) error
	Delete(id string) error
}
