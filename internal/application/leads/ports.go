package leads

import (
	"io"

	"github.com/jhoicas/Leadflow-api/internal/application/dto"
	"github.com/jhoicas/Leadflow-api/internal/domain/entity"
)

// SpreadsheetCodec puerto de lectura/escritura de planillas de leads.
// La implementación vive en infrastructure/spreadsheet.
type SpreadsheetCodec interface {
	// ParseLeads lee una planilla subida y devuelve los renglones crudos.
	ParseLeads(r io.Reader) ([]dto.ImportRow, error)
	// Export serializa los leads a una planilla descargable.
	Export(leads []*entity.Lead) ([]byte, error)
	// Template genera la planilla vacía con encabezados y renglón de ejemplo.
	Template() ([]byte, error)
}
