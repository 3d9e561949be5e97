package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/belezasmart/internal/cache"
	"github.com/BruksfildServices01/belezasmart/internal/config"
	"github.com/BruksfildServices01/belezasmart/internal/export"
	"github.com/BruksfildServices01/belezasmart/internal/metrics"
	"github.com/BruksfildServices01/belezasmart/internal/models"
	"github.com/BruksfildServices01/belezasmart/internal/payment"
	"github.com/BruksfildServices01/belezasmart/internal/testutil"
	"github.com/BruksfildServices01/belezasmart/internal/web"
)

type app struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
}

func newApp(t *testing.T) *app {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	logger, _ := test.NewNullLogger()

	cfg := &config.Config{
		JWTSecret:         "test-secret",
		AppBaseURL:        "https://app.exemplo.com",
		ConfirmationTTL:   48 * time.Hour,
		PhoneCountryCode:  "55",
		DefaultTimezone:   "America/Sao_Paulo",
		ConfirmRatePerSec: 100,
		ConfirmRateBurst:  100,
		CheckEmailDomain:  false,
	}

	r := gin.New()
	r.SetHTMLTemplate(web.Templates())
	RegisterRoutes(r, Deps{
		DB:      db,
		Config:  cfg,
		Log:     logger,
		Metrics: metrics.New(),
		Cache:   cache.Noop{},
		Gateway: payment.Disabled{},
	})

	return &app{t: t, db: db, router: r}
}

func (a *app) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (a *app) register(email string) string {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"email": email, "password": "segredo123", "full_name": "Ana",
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[struct {
		Token string `json:"token"`
	}](a.t, w).Token
}

func TestAuth_RegisterAndLogin(t *testing.T) {
	a := newApp(t)
	a.register("Ana@Salao.com")

	w := a.do(http.MethodPost, "/api/auth/register", "", gin.H{
		"email": "ana@salao.com", "password": "segredo123", "full_name": "Outra",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "email_taken")

	w = a.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "ana@salao.com", "password": "errada"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = a.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "ana@salao.com", "password": "segredo123"})
	require.Equal(t, http.StatusOK, w.Code)
	token := decode[struct {
		Token string `json:"token"`
	}](t, w).Token

	w = a.do(http.MethodGet, "/api/me/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile := decode[models.Profile](t, w)
	assert.Equal(t, "America/Sao_Paulo", profile.Timezone)
	assert.Equal(t, "Ana", profile.FullName)

	w = a.do(http.MethodGet, "/api/me/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAnonymousRequests(t *testing.T) {
	a := newApp(t)

	for _, path := range []string{
		"/api/me/clients", "/api/me/professionals", "/api/me/services",
		"/api/me/products", "/api/me/inventory", "/api/me/inventory/low-stock",
		"/api/me/appointments?date=2024-03-15",
	} {
		w := a.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `[]`, w.Body.String(), path)
	}

	w := a.do(http.MethodGet, "/api/me/audit-logs", "", nil)
	assert.JSONEq(t, `{"page":1,"limit":50,"total":0,"logs":[]}`, w.Body.String())

	w = a.do(http.MethodPost, "/api/me/clients", "", gin.H{"name": "Ana"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":false}`, w.Body.String())

	w = a.do(http.MethodDelete, "/api/me/clients/1", "", nil)
	assert.JSONEq(t, `{"success":false}`, w.Body.String())

	var count int64
	a.db.Model(&models.Client{}).Count(&count)
	assert.Zero(t, count)

	// token inválido também é tratado como anônimo
	w = a.do(http.MethodGet, "/api/me/clients", "not-a-jwt", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = a.do(http.MethodPost, "/api/me/clients", "not-a-jwt", gin.H{"name": "Ana"})
	assert.JSONEq(t, `{"success":false}`, w.Body.String())
}

func TestRegistryRejectsBlankNames(t *testing.T) {
	a := newApp(t)
	token := a.register("ana@salao.com")

	w := a.do(http.MethodPost, "/api/me/clients", token, gin.H{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_name")

	w = a.do(http.MethodPost, "/api/me/clients", token, gin.H{"name": "Bia"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	client := decode[models.Client](t, w)

	w = a.do(http.MethodPatch, fmt.Sprintf("/api/me/clients/%d", client.ID), token, gin.H{"name": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_name")

	w = a.do(http.MethodPatch, fmt.Sprintf("/api/me/clients/%d", client.ID), token, gin.H{"email": "nao-e-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodPost, "/api/me/services", token, gin.H{"name": " ", "price": "10.00"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var stored models.Client
	require.NoError(t, a.db.First(&stored, client.ID).Error)
	assert.Equal(t, "Bia", stored.Name)
	assert.Empty(t, stored.Email)
}

func TestClientLifecycle_WithReferences(t *testing.T) {
	a := newApp(t)
	token := a.register("ana@salao.com")

	w := a.do(http.MethodPost, "/api/me/clients", token, gin.H{
		"name": "Bia", "phone": "11988887777", "date_of_birth": "1990-03-15",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	client := decode[models.Client](t, w)

	w = a.do(http.MethodPost, "/api/me/services", token, gin.H{"name": "Corte", "price": "50.00"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	service := decode[models.Service](t, w)

	w = a.do(http.MethodPost, "/api/me/appointments", token, gin.H{
		"client_id": client.ID, "service_id": service.ID, "date": "2024-03-15", "time": "09:00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	ap := decode[models.Appointment](t, w)

	w = a.do(http.MethodDelete, fmt.Sprintf("/api/me/clients/%d", client.ID), token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Cliente possui agendamentos")

	w = a.do(http.MethodDelete, fmt.Sprintf("/api/me/services/%d", service.ID), token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = a.do(http.MethodPatch, fmt.Sprintf("/api/me/appointments/%d/status", ap.ID), token, gin.H{"status": "concluido"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = a.do(http.MethodGet, "/api/me/transactions?month=3&year=2024", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalIncome":"50"`)

	w = a.do(http.MethodDelete, "/api/me/clients/999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// outra conta não enxerga os dados
	other := a.register("carla@salao.com")
	w = a.do(http.MethodGet, "/api/me/clients", other, nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestAppointmentValidation(t *testing.T) {
	a := newApp(t)
	token := a.register("ana@salao.com")

	w := a.do(http.MethodPost, "/api/me/appointments", token, gin.H{
		"client_id": 1, "service_id": 1, "date": "2024-03-15", "time": "09:00",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "client_not_found")

	w = a.do(http.MethodGet, "/api/me/appointments/statuses", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "scheduled")

	w = a.do(http.MethodGet, "/api/me/appointments/availability?date=2024-03-15", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"time":"08:00"`)
}

func TestConfirmationPage(t *testing.T) {
	a := newApp(t)
	token := a.register("ana@salao.com")

	w := a.do(http.MethodPost, "/api/me/clients", token, gin.H{"name": "Bia", "phone": "11988887777"})
	client := decode[models.Client](t, w)
	w = a.do(http.MethodPost, "/api/me/services", token, gin.H{"name": "Corte", "price": 50})
	service := decode[models.Service](t, w)
	w = a.do(http.MethodPost, "/api/me/appointments", token, gin.H{
		"client_id": client.ID, "service_id": service.ID, "date": "2024-03-15", "time": "09:00",
	})
	ap := decode[models.Appointment](t, w)

	w = a.do(http.MethodPost, fmt.Sprintf("/api/me/appointments/%d/confirmation-link", ap.ID), token, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	link := decode[struct {
		Token string `json:"token"`
	}](t, w)
	require.NotEmpty(t, link.Token)

	w = a.do(http.MethodGet, "/confirm-appointment?token="+link.Token, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Agendamento confirmado!")
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	w = a.do(http.MethodGet, "/confirm-appointment?token="+link.Token, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "já confirmado")

	w = a.do(http.MethodGet, "/confirm-appointment?token=desconhecido", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodGet, "/confirm-appointment", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransactionsExport(t *testing.T) {
	a := newApp(t)
	token := a.register("ana@salao.com")

	w := a.do(http.MethodPost, "/api/me/transactions", token, gin.H{
		"tipo": "despesa", "descricao": "Luz", "valor": "30.05", "data": "2024-03-11",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = a.do(http.MethodGet, "/api/me/transactions/export.xlsx", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, export.XLSXContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "transacoes.xlsx")

	w = a.do(http.MethodGet, "/api/me/transactions/export.pdf", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
}

func TestBilling_ProviderDisabled(t *testing.T) {
	a := newApp(t)
	token := a.register("ana@salao.com")

	w := a.do(http.MethodPost, "/api/billing/checkout", token, gin.H{"planType": "ouro"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_plan")

	w = a.do(http.MethodPost, "/api/billing/checkout", token, gin.H{"planType": "BASICO"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)

	w = a.do(http.MethodPost, "/api/billing/portal", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfileAvatar_StorageUnavailable(t *testing.T) {
	a := newApp(t)
	token := a.register("ana@salao.com")

	var body bytes.Buffer
	body.WriteString("--x\r\nContent-Disposition: form-data; name=\"avatar\"; filename=\"a.png\"\r\n\r\nabc\r\n--x--\r\n")
	req := httptest.NewRequest(http.MethodPost, "/api/me/profile/avatar", &body)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "storage_unavailable")
}
