package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Leadflow-api/internal/application/dto"
	"github.com/jhoicas/Leadflow-api/internal/domain"
	"github.com/jhoicas/Leadflow-api/internal/domain/entity"
	"github.com/jhoicas/Leadflow-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// PaymentUseCase consulta y mantenimiento de pagos, más la emisión del
// recibo en PDF. El alta de pagos (que mueve el lead) vive en lifecycle.
type PaymentUseCase struct {
	paymentRepo repository.PaymentRepository
	leadRepo    repository.LeadRepository
	receipts    ReceiptPDFGenerator
}

func NewPaymentUseCase(paymentRepo repository.PaymentRepository, leadRepo repository.LeadRepository, receipts ReceiptPDFGenerator) *PaymentUseCase {
	return &PaymentUseCase{paymentRepo: paymentRepo, leadRepo: leadRepo, receipts: receipts}
}

// List pagos con datos de contacto del lead.
func (uc *PaymentUseCase) List(_ context.Context) ([]*dto.PaymentResponse, error) {
	rows, err := uc.paymentRepo.ListWithLead()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, &dto.PaymentResponse{
			ID:          row.ID,
			LeadID:      row.LeadID,
			LeadName:    row.LeadName,
			LeadPhone:   row.LeadPhone,
			LeadEmail:   row.LeadEmail,
			Amount:      row.Amount,
			Status:      string(row.Status),
			Method:      row.Method,
			PaymentDate: row.PaymentDate,
			InvoiceID:   row.InvoiceID,
		})
	}
	return out, nil
}

// GetByID busca un pago por id.
func (uc *PaymentUseCase) GetByID(_ context.Context, id string) (*dto.PaymentResponse, error) {
	payment, err := uc.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.PaymentResponse{
		ID:          payment.ID,
		LeadID:      payment.LeadID,
		Amount:      payment.Amount,
		Status:      string(payment.Status),
		Method:      payment.Method,
		PaymentDate: payment.PaymentDate,
		InvoiceID:   payment.InvoiceID,
	}, nil
}

// Update edición libre de un pago; no toca el estado del lead.
func (uc *PaymentUseCase) Update(_ context.Context, id string, in dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	payment, err := uc.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	if !in.Amount.IsZero() {
		if in.Amount.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		payment.Amount = in.Amount
	}
	if in.Status != "" {
		s := entity.PaymentStatus(in.Status)
		if !s.Valid() {
			return nil, domain.ErrInvalidInput
		}
		payment.Status = s
	}
	if in.Method != "" {
		payment.Method = in.Method
	}
	if in.PaymentDate != "" {
		d, err := parseDate(in.PaymentDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		payment.PaymentDate = d
	}
	if in.InvoiceID != "" {
		payment.InvoiceID = in.InvoiceID
	}
	payment.UpdatedAt = time.Now()
	if err := uc.paymentRepo.Update(payment); err != nil {
		return nil, err
	}
	return uc.GetByID(context.Background(), id)
}

// Delete elimina un pago.
func (uc *PaymentUseCase) Delete(_ context.Context, id string) error {
	payment, err := uc.paymentRepo.GetByID(id)
	if err != nil {
		return err
	}
	if payment == nil {
		return domain.ErrNotFound
	}
	return uc.paymentRepo.Delete(id)
}

// Receipt genera el recibo PDF de un pago, con el contacto del lead.
func (uc *PaymentUseCase) Receipt(_ context.Context, id string) ([]byte, error) {
	payment, err := uc.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	row := &repository.PaymentWithLead{Payment: *payment}
	if lead, err := uc.leadRepo.GetByID(payment.LeadID); err == nil && lead != nil {
		row.LeadName = lead.Name
		row.LeadPhone = lead.Phone
		row.LeadEmail = lead.Email
	}
	return uc.receipts.Generate(row)
}
