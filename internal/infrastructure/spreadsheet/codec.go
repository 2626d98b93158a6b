// Package spreadsheet implementa la carga y descarga de leads en XLSX con
// excelize. El formato replica la planilla que los telecallers ya usan:
// encabezados Name, Email, Phone, Source, Campaign.
package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Leadflow-api/internal/application/dto"
	"github.com/jhoicas/Leadflow-api/internal/application/leads"
	"github.com/jhoicas/Leadflow-api/internal/domain/entity"
)

var _ leads.SpreadsheetCodec = (*Codec)(nil)

const sheetName = "Leads"

var headers = []string{"Name", "Email", "Phone", "Source", "Campaign"}

// exportHeaders columnas extra de la descarga (solo lectura).
var exportHeaders = []string{"Name", "Email", "Phone", "Source", "Campaign", "Status", "Remarks", "Date Added"}

// Codec codifica y decodifica planillas de leads.
type Codec struct{}

// NewCodec construye el codec.
func NewCodec() *Codec {
	return &Codec{}
}

// ParseLeads lee la primera hoja de la planilla subida. La fila 1 es el
// encabezado; se localizan las columnas por nombre para tolerar reordenes.
// Las celdas faltantes quedan vacías y las valida el caso de uso.
func (c *Codec) ParseLeads(r io.Reader) ([]dto.ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir planilla: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("planilla sin hojas")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("leer filas: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	col := columnIndex(rows[0])
	out := make([]dto.ImportRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		item := dto.ImportRow{
			Name:     cell(row, col["name"]),
			Email:    cell(row, col["email"]),
			Phone:    cell(row, col["phone"]),
			Source:   cell(row, col["source"]),
			Campaign: cell(row, col["campaign"]),
		}
		if item.Name == "" && item.Phone == "" {
			continue // fila totalmente vacía
		}
		out = append(out, item)
	}
	return out, nil
}

// Export serializa los leads a una planilla descargable con todas las
// columnas visibles del panel.
func (c *Codec) Export(list []*entity.Lead) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("crear hoja: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	if err := f.SetSheetRow(sheetName, "A1", &exportHeaders); err != nil {
		return nil, fmt.Errorf("escribir encabezado: %w", err)
	}
	for i, lead := range list {
		row := []any{
			lead.Name, lead.Email, lead.Phone, lead.Source, lead.Campaign,
			string(lead.Status), lead.Remarks, lead.DateAdded.Format("02/01/2006"),
		}
		cellRef, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetName, cellRef, &row); err != nil {
			return nil, fmt.Errorf("escribir fila %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar planilla: %w", err)
	}
	return buf.Bytes(), nil
}

// Template genera la planilla vacía de importación con un renglón de ejemplo.
func (c *Codec) Template() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("crear hoja: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, fmt.Errorf("escribir encabezado: %w", err)
	}
	example := []any{"Juan Pérez", "juan@example.com", "+573001234567", "Facebook", "Campaña Q1"}
	if err := f.SetSheetRow(sheetName, "A2", &example); err != nil {
		return nil, fmt.Errorf("escribir ejemplo: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar planilla: %w", err)
	}
	return buf.Bytes(), nil
}

// columnIndex mapea nombre de encabezado (minúsculas) -> índice de columna.
func columnIndex(header []string) map[string]int {
	col := map[string]int{"name": -1, "email": -1, "phone": -1, "source": -1, "campaign": -1}
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, ok := col[key]; ok {
			col[key] = i
		}
	}
	return col
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
