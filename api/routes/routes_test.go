package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Avis17/karunya-draw-tracker/api/routes"
	"github.com/Avis17/karunya-draw-tracker/internal/config"
	"github.com/Avis17/karunya-draw-tracker/internal/handlers"
	"github.com/Avis17/karunya-draw-tracker/internal/models"
	"github.com/Avis17/karunya-draw-tracker/internal/policy"
	"github.com/Avis17/karunya-draw-tracker/internal/repositories/memory"
	"github.com/Avis17/karunya-draw-tracker/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminPrefix = "/admin-secret-access-2024"

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router     *gin.Engine
	resultRepo *memory.ResultRepository
	auth       services.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{
			AllowedHosts:    []string{"localhost:3000"},
			AdminPathPrefix: adminPrefix,
		},
		JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600},
		Lottery: config.LotteryConfig{
			SlotTimes: []string{"10:20", "12:20", "14:20", "16:20", "18:20"},
			Timezone:  "UTC",
		},
	}

	slots, err := policy.ParseSlots(cfg.Lottery.SlotTimes)
	require.NoError(t, err)
	loc, err := cfg.Lottery.Location()
	require.NoError(t, err)

	resultRepo := memory.NewResultRepository()
	adminRepo := memory.NewAdminUserRepository()

	resultService := services.NewResultService(resultRepo, slots, loc)
	authService := services.NewAuthService(adminRepo, cfg)

	router := routes.SetupRouter(cfg, routes.HandlerDependencies{
		AuthHandler:   handlers.NewAuthHandler(authService),
		ResultHandler: handlers.NewResultHandler(resultService, loc),
		AdminHandler:  handlers.NewAdminHandler(resultService, loc),
	})

	return &testEnv{router: router, resultRepo: resultRepo, auth: authService}
}

func (e *testEnv) loginAdmin(t *testing.T) string {
	t.Helper()

	_, err := e.auth.CreateAdmin(context.Background(), "Site Admin", "admin@example.com", "s3cret-pass", "admin")
	require.NoError(t, err)

	body, _ := json.Marshal(models.LoginRequest{Email: "admin@example.com", Password: "s3cret-pass"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, adminPrefix+"/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	e.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (e *testEnv) adminRequest(method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, adminPrefix+path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.adminRequest(http.MethodGet, "/results?date=2024-06-01", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.adminRequest(http.MethodPost, "/results", "not-a-token", models.UpsertResultRequest{
		DrawDate: "2024-06-01", SlotTime: "10:20", ResultNumber: "123456",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, env.resultRepo.Count())
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.loginAdmin(t)

	body, _ := json.Marshal(models.LoginRequest{Email: "admin@example.com", Password: "wrong"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, adminPrefix+"/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminResultLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.loginAdmin(t)

	// Create
	w := env.adminRequest(http.MethodPost, "/results", token, models.UpsertResultRequest{
		DrawDate: "2024-06-01", SlotTime: "10:20", ResultNumber: "012345",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created models.LotteryResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "012345", created.ResultNumber)
	assert.Equal(t, "admin@example.com", created.CreatedBy)

	// Update in place
	w = env.adminRequest(http.MethodPost, "/results", token, models.UpsertResultRequest{
		DrawDate: "2024-06-01", SlotTime: "10:20", ResultNumber: "654321",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, env.resultRepo.Count())

	// Admin read returns raw rows regardless of slot times
	w = env.adminRequest(http.MethodGet, "/results?date=2024-06-01", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var rows []models.LotteryResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "654321", rows[0].ResultNumber)

	// Delete
	w = env.adminRequest(http.MethodDelete, "/results/"+rows[0].ID.Hex(), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, env.resultRepo.Count())

	w = env.adminRequest(http.MethodDelete, "/results/"+rows[0].ID.Hex(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminUpsertValidation(t *testing.T) {
	env := newTestEnv(t)
	token := env.loginAdmin(t)

	for _, number := range []string{"12345", "1234567", "12a456"} {
		w := env.adminRequest(http.MethodPost, "/results", token, models.UpsertResultRequest{
			DrawDate: "2024-06-01", SlotTime: "10:20", ResultNumber: number,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, number)
	}
	w := env.adminRequest(http.MethodPost, "/results", token, models.UpsertResultRequest{
		DrawDate: "2024-06-01", SlotTime: "09:09", ResultNumber: "123456",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, 0, env.resultRepo.Count())
}

func TestBoardNeverLeaksUndisclosedDigits(t *testing.T) {
	env := newTestEnv(t)
	token := env.loginAdmin(t)

	// Publish tomorrow's result ahead of time; the public board must hide it
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	w := env.adminRequest(http.MethodPost, "/results", token, models.UpsertResultRequest{
		DrawDate: tomorrow, SlotTime: "10:20", ResultNumber: "987654",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/results/board?date="+tomorrow, nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "987654")

	// The admin view still sees the raw row
	resp := env.adminRequest(http.MethodGet, "/results?date="+tomorrow, token, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "987654")
}
