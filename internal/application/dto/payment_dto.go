package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordPaymentRequest cuerpo de POST /api/payments.
type RecordPaymentRequest struct {
	LeadID      string          `json:"lead_id"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"` // Paid | Not Paid (default Paid)
	Method      string          `json:"method"`
	PaymentDate string          `json:"payment_date"` // opcional, default now
	InvoiceID   string          `json:"invoice_id"`
}

// UpdatePaymentRequest cuerpo de PUT /api/payments/:id.
type UpdatePaymentRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	Method      string          `json:"method"`
	PaymentDate string          `json:"payment_date"`
	InvoiceID   string          `json:"invoice_id"`
}

// PaymentResponse representación de un pago en la API.
type PaymentResponse struct {
	ID          string          `json:"id"`
	LeadID      string          `json:"lead_id"`
	LeadName    string          `json:"lead_name,omitempty"`
	LeadPhone   string          `json:"lead_phone,omitempty"`
	LeadEmail   string          `json:"lead_email,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	Method      string          `json:"method,omitempty"`
	PaymentDate time.Time       `json:"payment_date"`
	InvoiceID   string          `json:"invoice_id,omitempty"`
}
