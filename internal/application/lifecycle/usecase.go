// Package lifecycle implementa el motor de ciclo de vida de un lead: las
// operaciones del operador (resultado de llamada, asignación y cierre de demo,
// integración, pago) y sus cascadas sobre el estado del lead.
//
// El grafo de estados es abierto: ninguna operación exige un estado previo
// concreto. Lo que sí se garantiza es atomicidad por operación (TxRunner) y
// validación completa antes de tocar nada.
package lifecycle

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Leadflow-api/internal/application/dto"
	"github.com/jhoicas/Leadflow-api/internal/domain"
	"github.com/jhoicas/Leadflow-api/internal/domain/entity"
	"github.com/jhoicas/Leadflow-api/internal/domain/pipeline"
	"github.com/jhoicas/Leadflow-api/internal/domain/repository"
)

// UseCase motor de ciclo de vida. Todas las operaciones mutadoras corren
// dentro de una transacción del Entity Store.
type UseCase struct {
	tx TxRunner
}

// NewUseCase construye el motor.
func NewUseCase(tx TxRunner) *UseCase {
	return &UseCase{tx: tx}
}

// RecordCallOutcome registra el resultado de una llamada: mueve el estado del
// lead según el resultado, marca lastResponse=now y guarda los remarks.
// Cualquier estado previo es legal.
func (uc *UseCase) RecordCallOutcome(ctx context.Context, leadID string, in dto.RecordCallRequest) (*dto.LeadResponse, error) {
	newStatus, ok := pipeline.StatusForCallOutcome(pipeline.CallOutcome(in.Outcome))
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.LeadResponse
	err := uc.tx.Run(ctx, func(
		leadRepo repository.LeadRepository,
		_ repository.DemoRepository,
		_ repository.IntegrationRepository,
		_ repository.PaymentRepository,
		notifRepo repository.NotificationRepository,
	) error {
		lead, err := leadRepo.GetByID(leadID)
		if err != nil {
			return err
		}
		if lead == nil {
			return domain.ErrLeadNotFound
		}
		now := time.Now()
		lead.Status = newStatus
		lead.LastResponse = &now
		lead.Remarks = in.Remarks
		lead.UpdatedAt = now
		if err := leadRepo.Update(lead); err != nil {
			return err
		}
		if n := pipeline.BuildStatusChangeNotification(lead, newStatus, now); n != nil {
			if err := notifRepo.Create(n); err != nil {
				return err
			}
		}
		out = leadToResponse(lead)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AssignDemo crea (o reemplaza) la demo del lead y lo mueve a estado Demo.
// Requiere tipo válido, fecha de inicio y duración positiva; un lead tiene a
// lo sumo una demo activa.
func (uc *UseCase) AssignDemo(ctx context.Context, in dto.AssignDemoRequest) (*dto.DemoResponse, error) {
	if in.LeadID == "" || in.DurationDays <= 0 {
		return nil, domain.ErrInvalidInput
	}
	demoType := entity.DemoType(in.DemoType)
	if !demoType.Valid() {
		return nil, domain.ErrInvalidInput
	}
	start, err := parseDate(in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.DemoResponse
	err = uc.tx.Run(ctx, func(
		leadRepo repository.LeadRepository,
		demoRepo repository.DemoRepository,
		_ repository.IntegrationRepository,
		_ repository.PaymentRepository,
		notifRepo repository.NotificationRepository,
	) error {
		lead, err := leadRepo.GetByID(in.LeadID)
		if err != nil {
			return err
		}
		if lead == nil {
			return domain.ErrLeadNotFound
		}
		now := time.Now()
		demo := &entity.Demo{
			ID:        uuid.New().String(),
			LeadID:    lead.ID,
			Type:      demoType,
			StartDate: start,
			EndDate:   pipeline.DemoEndDate(start, in.DurationDays),
			Status:    entity.DemoStatusScheduled,
			Remarks:   in.Remarks,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := demoRepo.ReplaceForLead(demo); err != nil {
			return err
		}
		lead.Status = entity.LeadStatusDemo
		lead.UpdatedAt = now
		if err := leadRepo.Update(lead); err != nil {
			return err
		}
		if n := pipeline.BuildStatusChangeNotification(lead, entity.LeadStatusDemo, now); n != nil {
			if err := notifRepo.Create(n); err != nil {
				return err
			}
		}
		out = demoToResponse(demo, lead, now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RecordDemoOutcome cierra una demo: interested avanza el lead a Integrated y
// abre la integración; not_responded / follow_up regresan a Contacted dejando
// el resultado en los remarks.
func (uc *UseCase) RecordDemoOutcome(ctx context.Context, demoID string, in dto.DemoOutcomeRequest) (*dto.LeadResponse, error) {
	outcome := pipeline.DemoOutcome(in.Outcome)
	newStatus, ok := pipeline.StatusForDemoOutcome(outcome)
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.LeadResponse
	err := uc.tx.Run(ctx, func(
		leadRepo repository.LeadRepository,
		demoRepo repository.DemoRepository,
		integrationRepo repository.IntegrationRepository,
		_ repository.PaymentRepository,
		notifRepo repository.NotificationRepository,
	) error {
		demo, err := demoRepo.GetByID(demoID)
		if err != nil {
			return err
		}
		if demo == nil {
			return domain.ErrNotFound
		}
		lead, err := leadRepo.GetByID(demo.LeadID)
		if err != nil {
			return err
		}
		if lead == nil {
			return domain.ErrLeadNotFound
		}

		now := time.Now()
		lead.Status = newStatus
		lead.Remarks = remarksForDemoOutcome(outcome)
		lead.UpdatedAt = now
		if err := leadRepo.Update(lead); err != nil {
			return err
		}

		if outcome == pipeline.DemoInterested {
			demo.Status = entity.DemoStatusCompleted
			demo.UpdatedAt = now
			if err := demoRepo.Update(demo); err != nil {
				return err
			}
			existing, err := integrationRepo.GetByLeadID(lead.ID)
			if err != nil {
				return err
			}
			if existing == nil {
				integration := &entity.Integration{
					ID:        uuid.New().String(),
					LeadID:    lead.ID,
					Status:    entity.IntegrationStarted,
					StartDate: now,
					CreatedAt: now,
					UpdatedAt: now,
				}
				if err := integrationRepo.Create(integration); err != nil {
					return err
				}
			}
		}

		if n := pipeline.BuildStatusChangeNotification(lead, newStatus, now); n != nil {
			if err := notifRepo.Create(n); err != nil {
				return err
			}
		}
		out = leadToResponse(lead)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// StartIntegration abre la fase de integración de un lead directamente (sin
// pasar por una demo) y lo mueve a estado Integrated.
func (uc *UseCase) StartIntegration(ctx context.Context, in dto.StartIntegrationRequest) (*dto.IntegrationResponse, error) {
	if in.LeadID == "" {
		return nil, domain.ErrInvalidInput
	}
	start := time.Now()
	if in.StartDate != "" {
		parsed, err := parseDate(in.StartDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		start = parsed
	}

	var out *dto.IntegrationResponse
	err := uc.tx.Run(ctx, func(
		leadRepo repository.LeadRepository,
		_ repository.DemoRepository,
		integrationRepo repository.IntegrationRepository,
		_ repository.PaymentRepository,
		notifRepo repository.NotificationRepository,
	) error {
		lead, err := leadRepo.GetByID(in.LeadID)
		if err != nil {
			return err
		}
		if lead == nil {
			return domain.ErrLeadNotFound
		}
		now := time.Now()
		integration := &entity.Integration{
			ID:        uuid.New().String(),
			LeadID:    lead.ID,
			Status:    entity.IntegrationStarted,
			StartDate: start,
			Feedback:  in.Feedback,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := integrationRepo.Create(integration); err != nil {
			return err
		}
		lead.Status = entity.LeadStatusIntegrated
		lead.UpdatedAt = now
		if err := leadRepo.Update(lead); err != nil {
			return err
		}
		if n := pipeline.BuildStatusChangeNotification(lead, entity.LeadStatusIntegrated, now); n != nil {
			if err := notifRepo.Create(n); err != nil {
				return err
			}
		}
		out = integrationToResponse(integration, lead)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateIntegration edición libre de la integración (estado, fechas,
// feedback). No toca el estado del lead: ya es Integrated por construcción.
func (uc *UseCase) UpdateIntegration(ctx context.Context, id string, in dto.UpdateIntegrationRequest) (*dto.IntegrationResponse, error) {
	if in.Status != "" && !entity.IntegrationStatus(in.Status).Valid() {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.IntegrationResponse
	err := uc.tx.Run(ctx, func(
		leadRepo repository.LeadRepository,
		_ repository.DemoRepository,
		integrationRepo repository.IntegrationRepository,
		_ repository.PaymentRepository,
		_ repository.NotificationRepository,
	) error {
		integration, err := integrationRepo.GetByID(id)
		if err != nil {
			return err
		}
		if integration == nil {
			return domain.ErrNotFound
		}
		if in.Status != "" {
			integration.Status = entity.IntegrationStatus(in.Status)
		}
		if in.StartDate != "" {
			start, err := parseDate(in.StartDate)
			if err != nil {
				return domain.ErrInvalidInput
			}
			integration.StartDate = start
		}
		if in.EndDate != "" {
			end, err := parseDate(in.EndDate)
			if err != nil {
				return domain.ErrInvalidInput
			}
			integration.EndDate = &end
		}
		if in.Feedback != "" {
			integration.Feedback = in.Feedback
		}
		integration.UpdatedAt = time.Now()
		if err := integrationRepo.Update(integration); err != nil {
			return err
		}
		lead, err := leadRepo.GetByID(integration.LeadID)
		if err != nil {
			return err
		}
		out = integrationToResponse(integration, lead)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RecordPayment registra un pago. Monto negativo es inválido; si el estado es
// Paid el lead pasa a Paid en la misma transacción.
func (uc *UseCase) RecordPayment(ctx context.Context, in dto.RecordPaymentRequest) (*dto.PaymentResponse, error) {
	if in.LeadID == "" || in.Amount.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	status := entity.PaymentStatus(in.Status)
	if in.Status == "" {
		status = entity.PaymentPaid
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidInput
	}
	payDate := time.Now()
	if in.PaymentDate != "" {
		parsed, err := parseDate(in.PaymentDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		payDate = parsed
	}

	var out *dto.PaymentResponse
	err := uc.tx.Run(ctx, func(
		leadRepo repository.LeadRepository,
		_ repository.DemoRepository,
		_ repository.IntegrationRepository,
		paymentRepo repository.PaymentRepository,
		notifRepo repository.NotificationRepository,
	) error {
		lead, err := leadRepo.GetByID(in.LeadID)
		if err != nil {
			return err
		}
		if lead == nil {
			return domain.ErrLeadNotFound
		}
		now := time.Now()
		payment := &entity.Payment{
			ID:          uuid.New().String(),
			LeadID:      lead.ID,
			Amount:      in.Amount,
			Status:      status,
			Method:      in.Method,
			PaymentDate: payDate,
			InvoiceID:   in.InvoiceID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := paymentRepo.Create(payment); err != nil {
			return err
		}
		if status == entity.PaymentPaid {
			lead.Status = entity.LeadStatusPaid
			lead.UpdatedAt = now
			if err := leadRepo.Update(lead); err != nil {
				return err
			}
			if n := pipeline.BuildStatusChangeNotification(lead, entity.LeadStatusPaid, now); n != nil {
				if err := notifRepo.Create(n); err != nil {
					return err
				}
			}
		}
		out = paymentToResponse(payment, lead)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func remarksForDemoOutcome(outcome pipeline.DemoOutcome) string {
	switch outcome {
	case pipeline.DemoInterested:
		return "Demo successful"
	case pipeline.DemoNotResponded:
		return "Demo not responded"
	default:
		return "Demo follow up"
	}
}

// parseDate acepta RFC3339 o fecha simple YYYY-MM-DD.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func leadToResponse(l *entity.Lead) *dto.LeadResponse {
	return &dto.LeadResponse{
		ID:           l.ID,
		Name:         l.Name,
		Email:        l.Email,
		Phone:        l.Phone,
		Source:       l.Source,
		Campaign:     l.Campaign,
		Status:       string(l.Status),
		Remarks:      l.Remarks,
		LastResponse: l.LastResponse,
		DateAdded:    l.DateAdded,
	}
}

func demoToResponse(d *entity.Demo, lead *entity.Lead, now time.Time) *dto.DemoResponse {
	w := pipeline.Window(d, now)
	resp := &dto.DemoResponse{
		ID:            d.ID,
		LeadID:        d.LeadID,
		DemoType:      string(d.Type),
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		Status:        d.Status,
		Remarks:       d.Remarks,
		Feedback:      d.Feedback,
		DaysRemaining: w.DaysRemaining,
		Expired:       w.Expired,
	}
	if lead != nil {
		resp.LeadName = lead.Name
		resp.LeadPhone = lead.Phone
		resp.LeadEmail = lead.Email
	}
	return resp
}

func integrationToResponse(i *entity.Integration, lead *entity.Lead) *dto.IntegrationResponse {
	resp := &dto.IntegrationResponse{
		ID:        i.ID,
		LeadID:    i.LeadID,
		Status:    string(i.Status),
		StartDate: i.StartDate,
		EndDate:   i.EndDate,
		Feedback:  i.Feedback,
	}
	if lead != nil {
		resp.LeadName = lead.Name
		resp.LeadPhone = lead.Phone
		resp.LeadEmail = lead.Email
	}
	return resp
}

func paymentToResponse(p *entity.Payment, lead *entity.Lead) *dto.PaymentResponse {
	resp := &dto.PaymentResponse{
		ID:          p.ID,
		LeadID:      p.LeadID,
		Amount:      p.Amount,
		Status:      string(p.Status),
		Method:      p.Method,
		PaymentDate: p.PaymentDate,
		InvoiceID:   p.InvoiceID,
	}
	if lead != nil {
		resp.LeadName = lead.Name
		resp.LeadPhone = lead.Phone
		resp.LeadEmail = lead.Email
	}
	return resp
}
