package dto

// FunnelDataDTO conteos por etapa del embudo.
type FunnelDataDTO struct {
	Leads        int `json:"leads"`
	Demos        int `json:"demos"`
	Integrations int `json:"integrations"`
	Payments     int `json:"payments"`
}

// DashboardMetricsDTO respuesta de GET /api/dashboard.
// Los nombres de campo replican el contrato que ya consume el frontend.
type DashboardMetricsDTO struct {
	TotalLeads           int           `json:"totalLeads"`
	IntegrationStarted   int           `json:"integrationStarted"`
	IntegrationCompleted int           `json:"integrationCompleted"`
	PaymentsReceived     int           `json:"paymentsReceived"`
	PaymentsPending      int           `json:"paymentsPending"`
	ActiveDemos          int           `json:"activeDemos"`
	FunnelData           FunnelDataDTO `json:"funnelData"`
}
