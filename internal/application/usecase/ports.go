package usecase

import "github.com/jhoicas/Leadflow-api/internal/domain/repository"

// ReceiptPDFGenerator puerto de generación del recibo de pago en PDF.
// La implementación (maroto) vive en infrastructure/pdf.
type ReceiptPDFGenerator interface {
	Generate(payment *repository.PaymentWithLead) ([]byte, error)
}
