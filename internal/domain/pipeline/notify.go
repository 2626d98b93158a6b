package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Leadflow-api/internal/domain/entity"
)

// demoExpiryWindow anticipación con la que se avisa el vencimiento de una demo.
const demoExpiryWindow = 24 * time.Hour

// NotificationTypeForStatus mapea un cambio de estado "significativo" al tipo
// de notificación que genera. Los estados no significativos (New, Contacted,
// Unpaid) no generan notificación.
//
// Rejected→follow_up se conserva tal cual lo hace el producto aunque parezca
// una etiqueta equivocada; la UI filtra por estos tipos.
func NotificationTypeForStatus(status entity.LeadStatus) (entity.NotificationType, bool) {
	switch status {
	case entity.LeadStatusDemo:
		return entity.NotifDemoExpiry, true
	case entity.LeadStatusIntegrated:
		return entity.NotifIntegrationDeadline, true
	case entity.LeadStatusPaid:
		return entity.NotifPaymentReminder, true
	case entity.LeadStatusRejected:
		return entity.NotifFollowUp, true
	}
	return "", false
}

// BuildImportNotification arma la notificación de un lote importado.
// Devuelve nil para lotes vacíos: si todos los renglones eran duplicados no
// hay nada que anunciar.
func BuildImportNotification(count int, now time.Time) *entity.Notification {
	if count <= 0 {
		return nil
	}
	return &entity.Notification{
		ID:        uuid.New().String(),
		Type:      entity.NotifLeadAssigned,
		Title:     "Nuevos leads importados",
		Message:   fmt.Sprintf("Se importaron %d leads nuevos correctamente", count),
		CreatedAt: now,
	}
}

// BuildLeadAddedNotification arma la notificación de un alta manual.
func BuildLeadAddedNotification(lead *entity.Lead, now time.Time) *entity.Notification {
	return &entity.Notification{
		ID:        uuid.New().String(),
		Type:      entity.NotifLeadAssigned,
		Title:     "Nuevo lead agregado",
		Message:   fmt.Sprintf("%s fue agregado manualmente", lead.Name),
		LeadID:    lead.ID,
		CreatedAt: now,
	}
}

// BuildStatusChangeNotification arma la notificación de un cambio de estado
// significativo. Devuelve nil si el estado no genera notificación.
func BuildStatusChangeNotification(lead *entity.Lead, newStatus entity.LeadStatus, now time.Time) *entity.Notification {
	ntype, ok := NotificationTypeForStatus(newStatus)
	if !ok {
		return nil
	}
	return &entity.Notification{
		ID:        uuid.New().String(),
		Type:      ntype,
		Title:     "Estado de lead actualizado",
		Message:   fmt.Sprintf("%s cambió a estado %s", lead.Name, newStatus),
		LeadID:    lead.ID,
		CreatedAt: now,
	}
}

// CheckDemoExpiry evalúa la condición temporal "demo vence en menos de 24h"
// sobre el snapshot y devuelve las notificaciones nuevas a persistir.
//
// Deduplicación: se omite el aviso si ya existe una notificación demo_expiry
// NO leída cuyo mensaje contiene el nombre del lead. La clave es burda a
// propósito (la UI depende de ella para no repetir avisos); no refinarla.
//
// La función es idempotente: dos corridas seguidas con el mismo input
// producen el aviso una sola vez.
func CheckDemoExpiry(leads []*entity.Lead, demos []*entity.Demo, existing []*entity.Notification, now time.Time) []*entity.Notification {
	demoByLead := make(map[string]*entity.Demo, len(demos))
	for _, d := range demos {
		demoByLead[d.LeadID] = d
	}

	var out []*entity.Notification
	for _, lead := range leads {
		if lead.Status != entity.LeadStatusDemo {
			continue
		}
		demo, ok := demoByLead[lead.ID]
		if !ok || !ExpiresWithin(demo, now, demoExpiryWindow) {
			continue
		}
		if hasUnreadExpiryFor(existing, lead.Name) {
			continue
		}
		out = append(out, &entity.Notification{
			ID:        uuid.New().String(),
			Type:      entity.NotifDemoExpiry,
			Title:     "Demo por vencer",
			Message:   fmt.Sprintf("La demo de %s vence el %s", lead.Name, demo.EndDate.Format("02/01/2006")),
			LeadID:    lead.ID,
			CreatedAt: now,
		})
	}
	return out
}

func hasUnreadExpiryFor(existing []*entity.Notification, leadName string) bool {
	for _, n := range existing {
		if n.Type == entity.NotifDemoExpiry && !n.Read && strings.Contains(n.Message, leadName) {
			return true
		}
	}
	return false
}
