package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Leadflow-api/internal/application/analytics"
	"github.com/jhoicas/Leadflow-api/internal/application/auth"
	"github.com/jhoicas/Leadflow-api/internal/application/dto"
	"github.com/jhoicas/Leadflow-api/internal/application/leads"
	"github.com/jhoicas/Leadflow-api/internal/application/lifecycle"
	"github.com/jhoicas/Leadflow-api/internal/application/usecase"
	"github.com/jhoicas/Leadflow-api/internal/infrastructure/memory"
	"github.com/jhoicas/Leadflow-api/internal/infrastructure/spreadsheet"
	apphttp "github.com/jhoicas/Leadflow-api/internal/interfaces/http"
)

// buildAPI monta la API completa sobre el store en memoria, ya con un
// usuario admin creado.
func buildAPI(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore()

	userUC := usecase.NewUserUseCase(store.Users)
	_, err := userUC.Create(context.Background(), dto.CreateUserRequest{
		Name: "Admin", Email: "admin@leadflow.test", Password: "secreto123", Role: "Admin",
	})
	require.NoError(t, err)

	codec := spreadsheet.NewCodec()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		LeadUC:         leads.NewUseCase(store.Leads, store.Notifications, store, codec),
		LifecycleUC:    lifecycle.NewUseCase(store),
		AnalyticsUC:    analytics.NewUseCase(store),
		DemoUC:         usecase.NewDemoUseCase(store.Demos),
		IntegrationUC:  usecase.NewIntegrationUseCase(store.Integrations),
		PaymentUC:      usecase.NewPaymentUseCase(store.Payments, store.Leads, nil),
		NotificationUC: usecase.NewNotificationUseCase(store.Notifications),
		UserUC:         userUC,
		AuthUC: auth.NewAuthUseCase(store.Users, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		JWTSecret: testJWTSecret,
	})
	return app
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	body, _ := json.Marshal(dto.LoginRequest{Email: "admin@leadflow.test", Password: "secreto123"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return "Bearer " + out.Token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload any) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAPI_RutasProtegidasSinToken(t *testing.T) {
	app := buildAPI(t)
	resp := doJSON(t, app, http.MethodGet, "/api/leads/", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_CicloDeVidaCompleto(t *testing.T) {
	app := buildAPI(t)
	token := login(t, app)

	// alta de lead
	resp := doJSON(t, app, http.MethodPost, "/api/leads/", token, dto.CreateLeadRequest{
		Name: "Carlos", Phone: "+57300111", Source: "Facebook",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var lead dto.LeadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&lead))
	resp.Body.Close()
	assert.Equal(t, "New", lead.Status)

	// asignar demo
	resp = doJSON(t, app, http.MethodPost, "/api/demos/", token, dto.AssignDemoRequest{
		LeadID: lead.ID, DemoType: "Trial", StartDate: "2026-09-01", DurationDays: 7,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var demo dto.DemoResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&demo))
	resp.Body.Close()

	// resultado: interesado -> Integrated
	resp = doJSON(t, app, http.MethodPost, "/api/demos/"+demo.ID+"/outcome", token, dto.DemoOutcomeRequest{
		Outcome: "interested",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated dto.LeadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	resp.Body.Close()
	assert.Equal(t, "Integrated", updated.Status)

	// el listado de demos trae los datos de contacto del lead y la ventana
	resp = doJSON(t, app, http.MethodGet, "/api/demos/", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var demoList []dto.DemoResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&demoList))
	resp.Body.Close()
	require.Len(t, demoList, 1)
	assert.Equal(t, "Carlos", demoList[0].LeadName)
	assert.Equal(t, "Trial", demoList[0].DemoType)

	// las notificaciones de la cascada se listan con el nombre del lead
	resp = doJSON(t, app, http.MethodGet, "/api/notifications/", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var notifList []dto.NotificationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&notifList))
	resp.Body.Close()
	require.NotEmpty(t, notifList)

	// dashboard refleja el embudo
	resp = doJSON(t, app, http.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var metrics dto.DashboardMetricsDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&metrics))
	resp.Body.Close()
	assert.Equal(t, 1, metrics.TotalLeads)
	assert.Equal(t, 1, metrics.IntegrationStarted)
}

func TestAPI_TelefonoDuplicadoDa409(t *testing.T) {
	app := buildAPI(t)
	token := login(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/leads/", token, dto.CreateLeadRequest{Name: "A", Phone: "1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/leads/", token, dto.CreateLeadRequest{Name: "B", Phone: "1"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var errBody dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "DUPLICATE_PHONE", errBody.Code)
}

func TestAPI_LeadInexistenteDa404(t *testing.T) {
	app := buildAPI(t)
	token := login(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/leads/no-existe", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_UsersSoloAdmin(t *testing.T) {
	app := buildAPI(t)
	token := login(t, app)

	// el admin crea un telecaller
	resp := doJSON(t, app, http.MethodPost, "/api/users/", token, dto.CreateUserRequest{
		Name: "Tele", Email: "tele@leadflow.test", Password: "secreto123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// el telecaller no puede listar usuarios
	body, _ := json.Marshal(dto.LoginRequest{Email: "tele@leadflow.test", Password: "secreto123"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	loginResp, err := app.Test(req, -1)
	require.NoError(t, err)
	var loginOut dto.LoginResponse
	require.NoError(t, json.NewDecoder(loginResp.Body).Decode(&loginOut))
	loginResp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/users/", "Bearer "+loginOut.Token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
