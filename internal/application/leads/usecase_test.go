package leads_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Leadflow-api/internal/application/dto"
	"github.com/jhoicas/Leadflow-api/internal/application/leads"
	"github.com/jhoicas/Leadflow-api/internal/domain"
	"github.com/jhoicas/Leadflow-api/internal/domain/entity"
	"github.com/jhoicas/Leadflow-api/internal/infrastructure/memory"
)

// stubCodec devuelve renglones fijos sin tocar excelize.
type stubCodec struct {
	rows []dto.ImportRow
	err  error
}

func (c *stubCodec) ParseLeads(io.Reader) ([]dto.ImportRow, error) { return c.rows, c.err }
func (c *stubCodec) Export([]*entity.Lead) ([]byte, error)         { return []byte("xlsx"), nil }
func (c *stubCodec) Template() ([]byte, error)                     { return []byte("tmpl"), nil }

func newFixture(codec leads.SpreadsheetCodec) (*leads.UseCase, *memory.Store) {
	store := memory.NewStore()
	return leads.NewUseCase(store.Leads, store.Notifications, store, codec), store
}

func TestCreate_AltaManualEmiteNotificacion(t *testing.T) {
	uc, store := newFixture(&stubCodec{})

	resp, err := uc.Create(context.Background(), dto.CreateLeadRequest{
		Name:   "Ana Torres",
		Phone:  "+573009998877",
		Source: "Referral",
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.LeadStatusNew), resp.Status)

	unread, err := store.Notifications.ListUnreadByType(entity.NotifLeadAssigned)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Contains(t, unread[0].Message, "Ana Torres")
}

func TestCreate_TelefonoDuplicado(t *testing.T) {
	uc, _ := newFixture(&stubCodec{})
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateLeadRequest{Name: "Ana", Phone: "111"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateLeadRequest{Name: "Otra Ana", Phone: "111"})
	assert.ErrorIs(t, err, domain.ErrDuplicatePhone)
}

func TestCreate_SinNombreOTelefono(t *testing.T) {
	uc, _ := newFixture(&stubCodec{})
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateLeadRequest{Phone: "222"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Create(ctx, dto.CreateLeadRequest{Name: "Sin Teléfono"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList_FiltraPorEstado(t *testing.T) {
	uc, store := newFixture(&stubCodec{})
	ctx := context.Background()

	a, err := uc.Create(ctx, dto.CreateLeadRequest{Name: "A", Phone: "1"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateLeadRequest{Name: "B", Phone: "2"})
	require.NoError(t, err)

	stored, err := store.Leads.GetByID(a.ID)
	require.NoError(t, err)
	stored.Status = entity.LeadStatusDemo
	require.NoError(t, store.Leads.Update(stored))

	all, err := uc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	demos, err := uc.List(ctx, "Demo")
	require.NoError(t, err)
	require.Len(t, demos, 1)
	assert.Equal(t, a.ID, demos[0].ID)

	_, err = uc.List(ctx, "Whatever")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_CambioDeEstadoEmiteNotificacion(t *testing.T) {
	uc, store := newFixture(&stubCodec{})
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateLeadRequest{Name: "C", Phone: "3"})
	require.NoError(t, err)

	resp, err := uc.Update(ctx, created.ID, dto.UpdateLeadRequest{Status: "Rejected"})
	require.NoError(t, err)
	assert.Equal(t, "Rejected", resp.Status)

	// el rechazo notifica como follow_up para que el operador reintente
	unread, err := store.Notifications.ListUnreadByType(entity.NotifFollowUp)
	require.NoError(t, err)
	assert.Len(t, unread, 1)
}

func TestUpdate_SinCambioDeEstadoNoNotifica(t *testing.T) {
	uc, store := newFixture(&stubCodec{})
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateLeadRequest{Name: "D", Phone: "4"})
	require.NoError(t, err)

	before, err := store.Notifications.List()
	require.NoError(t, err)

	_, err = uc.Update(ctx, created.ID, dto.UpdateLeadRequest{Remarks: "nota"})
	require.NoError(t, err)

	after, err := store.Notifications.List()
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestImport_DeduplicaYResume(t *testing.T) {
	codec := &stubCodec{rows: []dto.ImportRow{
		{Name: "Uno", Phone: "100"},
		{Name: "Dos", Phone: "200", Source: "Feria"},
		{Name: "", Phone: "300"},     // sin nombre
		{Name: "Cuatro", Phone: ""},  // sin teléfono
		{Name: "Repetido", Phone: "100"}, // duplicado en el lote
	}}
	uc, store := newFixture(codec)
	ctx := context.Background()

	// "200" ya existe en el store
	_, err := uc.Create(ctx, dto.CreateLeadRequest{Name: "Preexistente", Phone: "200"})
	require.NoError(t, err)

	result, err := uc.Import(ctx, bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 4, result.Skipped)

	imported, err := store.Leads.GetByPhone("100")
	require.NoError(t, err)
	require.NotNil(t, imported)
	assert.Equal(t, "Excel Import", imported.Source)
	assert.Equal(t, "Default Campaign", imported.Campaign)
	// fila sin email: se genera un placeholder único
	assert.Contains(t, imported.Email, "@placeholder.com")
}

func TestImport_ConservaEmailInformado(t *testing.T) {
	codec := &stubCodec{rows: []dto.ImportRow{
		{Name: "Ana", Phone: "400", Email: "ana@example.com"},
	}}
	uc, store := newFixture(codec)

	_, err := uc.Import(context.Background(), bytes.NewReader(nil))
	require.NoError(t, err)

	imported, err := store.Leads.GetByPhone("400")
	require.NoError(t, err)
	require.NotNil(t, imported)
	assert.Equal(t, "ana@example.com", imported.Email)
}

func TestImport_LoteVacioNoNotifica(t *testing.T) {
	uc, store := newFixture(&stubCodec{rows: nil})

	result, err := uc.Import(context.Background(), bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Zero(t, result.Imported)

	all, err := store.Notifications.List()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDelete_LeadInexistente(t *testing.T) {
	uc, _ := newFixture(&stubCodec{})
	err := uc.Delete(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, domain.ErrLeadNotFound)
}
