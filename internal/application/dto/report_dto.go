package dto

import "github.com/shopspring/decimal"

// FunnelReportDTO respuesta de GET /api/reports/funnel.
type FunnelReportDTO struct {
	Leads                int `json:"leads"`
	Contacted            int `json:"contacted"`
	Demos                int `json:"demos"`
	Integrations         int `json:"integrations"`
	Paid                 int `json:"paid"`
	LeadToDemoRate       int `json:"lead_to_demo_rate"`
	DemoToIntegration    int `json:"demo_to_integration_rate"`
	IntegrationToPayment int `json:"integration_to_payment_rate"`
}

// SourceStatDTO una fila del análisis por fuente de captación.
type SourceStatDTO struct {
	Source      string `json:"source"`
	Leads       int    `json:"leads"`
	Conversions int    `json:"conversions"`
	Rate        int    `json:"rate"`
}

// DemoReportDTO respuesta de GET /api/reports/demos.
type DemoReportDTO struct {
	ActiveDemos  int             `json:"active_demos"`
	ExpiredDemos int             `json:"expired_demos"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// StatusCountDTO una fila de la distribución de leads por estado.
type StatusCountDTO struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}
