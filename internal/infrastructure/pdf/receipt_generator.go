// Package pdf genera el recibo de pago que se entrega al cliente cuando un
// lead paga la licencia.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: LeadFlow CRM  │  N° Recibo + Fecha de pago          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Teléfono + Email                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE: Concepto | Método | Estado | Monto                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL PAGADO                                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Leadflow-api/internal/application/usecase"
	"github.com/jhoicas/Leadflow-api/internal/domain/repository"
)

var _ usecase.ReceiptPDFGenerator = (*ReceiptGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReceiptGenerator implementa usecase.ReceiptPDFGenerator usando Maroto v2.
type ReceiptGenerator struct{}

// NewReceiptGenerator construye el generador.
func NewReceiptGenerator() *ReceiptGenerator { return &ReceiptGenerator{} }

// Generate genera el recibo y devuelve sus bytes.
func (g *ReceiptGenerator) Generate(payment *repository.PaymentWithLead) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Recibo de Pago", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(payment))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(payment))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(detailHeaderRow())
	m.AddRows(detailRow(payment))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalRow(payment))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del sistema (izq) y número de recibo + fecha (der).
func headerRow(payment *repository.PaymentWithLead) core.Row {
	receiptNo := payment.InvoiceID
	if receiptNo == "" {
		receiptNo = payment.ID
	}
	fecha := payment.PaymentDate.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("LeadFlow CRM", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Recibo de pago de licencia", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RECIBO DE PAGO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(receiptNo, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clientRow: datos de contacto del cliente.
func clientRow(payment *repository.PaymentWithLead) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(payment.LeadName, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Tel: %s   |   Email: %s",
				nonEmpty(payment.LeadPhone, "—"),
				nonEmpty(payment.LeadEmail, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func detailHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Concepto", 5, align.Left),
		h("Método", 2, align.Center),
		h("Estado", 2, align.Center),
		h("Monto", 3, align.Right),
	)
}

func detailRow(payment *repository.PaymentWithLead) core.Row {
	return row.New(7).Add(
		col.New(5).Add(text.New(
			"Licencia LeadFlow CRM",
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			nonEmpty(payment.Method, "—"),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(2).Add(text.New(
			string(payment.Status),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(3).Add(text.New(
			"$"+payment.Amount.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

func totalRow(payment *repository.PaymentWithLead) core.Row {
	return row.New(10).Add(
		col.New(9).Add(text.New("TOTAL PAGADO", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
		})),
		col.New(3).Add(text.New("$"+payment.Amount.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
