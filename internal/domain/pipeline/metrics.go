package pipeline

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Leadflow-api/internal/domain/entity"
)

// Snapshot foto inmutable del estado actual del pipeline. Los agregados de
// este archivo son funciones puras de un Snapshot: nunca mutan nada y pueden
// recomputarse en cualquier momento con el mismo resultado.
type Snapshot struct {
	Leads        []*entity.Lead
	Demos        []*entity.Demo
	Integrations []*entity.Integration
	Payments     []*entity.Payment
}

// FunnelData conteos por etapa del embudo Leads→Demos→Integraciones→Pagos.
type FunnelData struct {
	Leads        int `json:"leads"`
	Demos        int `json:"demos"`
	Integrations int `json:"integrations"`
	Payments     int `json:"payments"`
}

// DashboardMetrics KPIs del dashboard principal.
type DashboardMetrics struct {
	TotalLeads           int        `json:"totalLeads"`
	IntegrationStarted   int        `json:"integrationStarted"`
	IntegrationCompleted int        `json:"integrationCompleted"`
	PaymentsReceived     int        `json:"paymentsReceived"`
	PaymentsPending      int        `json:"paymentsPending"`
	ActiveDemos          int        `json:"activeDemos"`
	FunnelData           FunnelData `json:"funnelData"`
}

// ComputeDashboardMetrics deriva los KPIs del dashboard a partir del snapshot.
//
// Reglas de conteo (idénticas al reporte original):
//   - activeDemos: demos con end_date > now cuyo estado no es Expired.
//   - funnel.demos: leads en estado Demo o con demo asociada.
//   - funnel.integrations: leads en estado Integrated o con integración asociada.
//   - funnel.payments: pagos recibidos (estado Paid).
func ComputeDashboardMetrics(snap Snapshot, now time.Time) DashboardMetrics {
	m := DashboardMetrics{TotalLeads: len(snap.Leads)}

	hasDemo := make(map[string]bool, len(snap.Demos))
	for _, d := range snap.Demos {
		hasDemo[d.LeadID] = true
		if d.EndDate.After(now) && d.Status != entity.DemoStatusExpired {
			m.ActiveDemos++
		}
	}

	hasIntegration := make(map[string]bool, len(snap.Integrations))
	for _, i := range snap.Integrations {
		hasIntegration[i.LeadID] = true
		switch i.Status {
		case entity.IntegrationStarted:
			m.IntegrationStarted++
		case entity.IntegrationCompleted:
			m.IntegrationCompleted++
		}
	}

	for _, p := range snap.Payments {
		switch p.Status {
		case entity.PaymentPaid:
			m.PaymentsReceived++
		case entity.PaymentNotPaid:
			m.PaymentsPending++
		}
	}

	m.FunnelData.Leads = m.TotalLeads
	for _, l := range snap.Leads {
		if l.Status == entity.LeadStatusDemo || hasDemo[l.ID] {
			m.FunnelData.Demos++
		}
		if l.Status == entity.LeadStatusIntegrated || hasIntegration[l.ID] {
			m.FunnelData.Integrations++
		}
	}
	m.FunnelData.Payments = m.PaymentsReceived

	return m
}

// ConversionRate porcentaje redondeado num/den. Denominador cero devuelve 0:
// un reporte sin datos es un estado válido y presentable, nunca un error.
func ConversionRate(num, den int) int {
	if den <= 0 {
		return 0
	}
	return int(math.Round(float64(num) / float64(den) * 100))
}

// FunnelReport conteos y tasas de conversión etapa a etapa.
type FunnelReport struct {
	Leads                int `json:"leads"`
	Contacted            int `json:"contacted"`
	Demos                int `json:"demos"`
	Integrations         int `json:"integrations"`
	Paid                 int `json:"paid"`
	LeadToDemoRate       int `json:"lead_to_demo_rate"`
	DemoToIntegration    int `json:"demo_to_integration_rate"`
	IntegrationToPayment int `json:"integration_to_payment_rate"`
}

// ComputeFunnelReport deriva el reporte de embudo para la vista de reportes.
// "Contacted" cuenta todo lead que salió de New, sin importar a dónde.
func ComputeFunnelReport(snap Snapshot) FunnelReport {
	hasDemo := make(map[string]bool, len(snap.Demos))
	for _, d := range snap.Demos {
		hasDemo[d.LeadID] = true
	}
	hasIntegration := make(map[string]bool, len(snap.Integrations))
	for _, i := range snap.Integrations {
		hasIntegration[i.LeadID] = true
	}
	paidLead := make(map[string]bool, len(snap.Payments))
	for _, p := range snap.Payments {
		if p.Status == entity.PaymentPaid {
			paidLead[p.LeadID] = true
		}
	}

	r := FunnelReport{Leads: len(snap.Leads)}
	for _, l := range snap.Leads {
		if l.Status != entity.LeadStatusNew {
			r.Contacted++
		}
		if l.Status == entity.LeadStatusDemo || hasDemo[l.ID] {
			r.Demos++
		}
		if l.Status == entity.LeadStatusIntegrated || hasIntegration[l.ID] {
			r.Integrations++
		}
		if paidLead[l.ID] {
			r.Paid++
		}
	}
	r.LeadToDemoRate = ConversionRate(r.Demos, r.Leads)
	r.DemoToIntegration = ConversionRate(r.Integrations, r.Demos)
	r.IntegrationToPayment = ConversionRate(r.Paid, r.Integrations)
	return r
}

// SourceStat desempeño de una fuente/canal de captación.
type SourceStat struct {
	Source      string `json:"source"`
	Leads       int    `json:"leads"`
	Conversions int    `json:"conversions"` // leads de la fuente que llegaron a Integrated
	Rate        int    `json:"rate"`        // porcentaje redondeado
}

// ComputeSourceAnalysis agrupa leads por fuente y calcula conversiones a
// Integrated. El resultado va ordenado por cantidad de leads descendente
// (desempate alfabético) para que el reporte sea determinista.
func ComputeSourceAnalysis(leads []*entity.Lead) []SourceStat {
	bySource := make(map[string]*SourceStat)
	for _, l := range leads {
		s, ok := bySource[l.Source]
		if !ok {
			s = &SourceStat{Source: l.Source}
			bySource[l.Source] = s
		}
		s.Leads++
		if l.Status == entity.LeadStatusIntegrated {
			s.Conversions++
		}
	}
	out := make([]SourceStat, 0, len(bySource))
	for _, s := range bySource {
		s.Rate = ConversionRate(s.Conversions, s.Leads)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Leads != out[j].Leads {
			return out[i].Leads > out[j].Leads
		}
		return out[i].Source < out[j].Source
	})
	return out
}

// DemoReport resumen de demos y recaudo para la vista de reportes.
type DemoReport struct {
	ActiveDemos  int             `json:"active_demos"`
	ExpiredDemos int             `json:"expired_demos"`
	Revenue      decimal.Decimal `json:"revenue"` // suma de pagos en estado Paid
}

// ComputeDemoReport cuenta demos vigentes/vencidas y suma el recaudo.
func ComputeDemoReport(snap Snapshot, now time.Time) DemoReport {
	r := DemoReport{Revenue: decimal.Zero}
	for _, d := range snap.Demos {
		if Window(d, now).Expired {
			r.ExpiredDemos++
		} else {
			r.ActiveDemos++
		}
	}
	for _, p := range snap.Payments {
		if p.Status == entity.PaymentPaid {
			r.Revenue = r.Revenue.Add(p.Amount)
		}
	}
	return r
}

// StatusCount conteo de leads por estado.
type StatusCount struct {
	Status entity.LeadStatus `json:"status"`
	Count  int               `json:"count"`
}

// statusOrder orden canónico de presentación de los estados.
var statusOrder = []entity.LeadStatus{
	entity.LeadStatusNew,
	entity.LeadStatusContacted,
	entity.LeadStatusRejected,
	entity.LeadStatusDemo,
	entity.LeadStatusIntegrated,
	entity.LeadStatusPaid,
	entity.LeadStatusUnpaid,
}

// ComputeStatusDistribution cuenta leads por estado, en orden canónico.
// Siempre devuelve los siete estados aunque el conteo sea cero.
func ComputeStatusDistribution(leads []*entity.Lead) []StatusCount {
	counts := make(map[entity.LeadStatus]int, len(statusOrder))
	for _, l := range leads {
		counts[l.Status]++
	}
	out := make([]StatusCount, 0, len(statusOrder))
	for _, s := range statusOrder {
		out = append(out, StatusCount{Status: s, Count: counts[s]})
	}
	return out
}
