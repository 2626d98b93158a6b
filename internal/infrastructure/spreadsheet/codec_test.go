package spreadsheet_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Leadflow-api/internal/domain/entity"
	"github.com/jhoicas/Leadflow-api/internal/infrastructure/spreadsheet"
)

func buildSheet(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParseLeads_ColumnasPorNombre(t *testing.T) {
	codec := spreadsheet.NewCodec()

	// columnas reordenadas a propósito
	data := buildSheet(t, [][]any{
		{"Phone", "Name", "Campaign"},
		{"+57111", "Ana", "Q3"},
		{"+57222", "Luis", ""},
	})

	rows, err := codec.ParseLeads(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ana", rows[0].Name)
	assert.Equal(t, "+57111", rows[0].Phone)
	assert.Equal(t, "Q3", rows[0].Campaign)
	assert.Empty(t, rows[0].Email)
	assert.Equal(t, "Luis", rows[1].Name)
}

func TestParseLeads_IgnoraFilasVacias(t *testing.T) {
	codec := spreadsheet.NewCodec()

	data := buildSheet(t, [][]any{
		{"Name", "Phone"},
		{"", ""},
		{"Eva", "+57333"},
	})

	rows, err := codec.ParseLeads(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Eva", rows[0].Name)
}

func TestParseLeads_ArchivoInvalido(t *testing.T) {
	codec := spreadsheet.NewCodec()
	_, err := codec.ParseLeads(bytes.NewReader([]byte("esto no es un xlsx")))
	assert.Error(t, err)
}

func TestExport_RoundTrip(t *testing.T) {
	codec := spreadsheet.NewCodec()
	leads := []*entity.Lead{
		{
			Name: "Ana", Email: "ana@x.co", Phone: "+57111", Source: "Facebook",
			Campaign: "Q1", Status: entity.LeadStatusDemo, DateAdded: time.Now(),
		},
	}

	data, err := codec.Export(leads)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Leads")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Name", rows[0][0])
	assert.Equal(t, "Ana", rows[1][0])
	assert.Equal(t, "Demo", rows[1][5])
}

func TestTemplate_EncabezadosYEjemplo(t *testing.T) {
	codec := spreadsheet.NewCodec()

	data, err := codec.Template()
	require.NoError(t, err)

	// la planilla generada debe poder reimportarse tal cual
	rows, err := codec.ParseLeads(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.NotEmpty(t, rows[0].Name)
	assert.NotEmpty(t, rows[0].Phone)
}
