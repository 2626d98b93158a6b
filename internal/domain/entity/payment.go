package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus estado de cobro de un pago.
type PaymentStatus string

// Estados válidos de pago. "Not Paid" lleva espacio porque así viaja en la API
// y así se almacena; no normalizar.
const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentNotPaid PaymentStatus = "Not Paid"
)

// Valid informa si el valor es un estado de pago conocido.
func (s PaymentStatus) Valid() bool {
	return s == PaymentPaid || s == PaymentNotPaid
}

// Payment pago registrado para un lead. Crear un pago con estado Paid es el
// disparador que mueve el lead a estado Paid.
type Payment struct {
	ID          string
	LeadID      string
	Amount      decimal.Decimal // >= 0 siempre; se valida en el caso de uso
	Status      PaymentStatus
	Method      string
	PaymentDate time.Time
	InvoiceID   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
