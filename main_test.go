package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{FrontendURL: "*"},
		Store:  config.StoreConfig{Backend: config.BackendMemory},
		Tokens: config.TokenConfig{
			Backend: config.BackendFile,
			File:    filepath.Join(t.TempDir(), "tokens.json"),
			TTL:     time.Hour,
		},
		Admin: config.AdminConfig{Email: "admin@example.com", Password: "s3cret"},
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	a, err := newApp(context.Background(), testConfig(t))
	require.NoError(t, err)
	return a.router()
}

func request(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestHealthAndReady(t *testing.T) {
	r := newTestRouter(t)

	w := request(r, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var health map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "ok", health["status"])
	_, err := time.Parse(time.RFC3339, health["timestamp"])
	assert.NoError(t, err)

	w = request(r, http.MethodGet, "/ready", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"store":true`)
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(t)
	w := request(r, http.MethodGet, "/api/nope", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"route not found"}`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t)
	w := request(r, http.MethodOptions, "/api/categories", "", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoginThenMutate(t *testing.T) {
	r := newTestRouter(t)

	w := request(r, http.MethodPost, "/api/categories", `{"name":"Billing"}`, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = request(r, http.MethodPost, "/api/auth/login", `{"email":"admin@example.com","password":"wrong"}`, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = request(r, http.MethodPost, "/api/auth/login", `{"email":"admin@example.com","password":"s3cret"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.Len(t, login.Token, 64)

	w = request(r, http.MethodPost, "/api/categories", `{"name":"Billing"}`, login.Token)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"slug":"billing"`)

	w = request(r, http.MethodGet, "/api/categories", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Billing")

	w = request(r, http.MethodPost, "/api/admin/backup", "", login.Token)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = request(r, http.MethodPost, "/api/auth/logout", "", login.Token)
	require.Equal(t, http.StatusOK, w.Code)

	w = request(r, http.MethodPost, "/api/categories", `{"name":"Other"}`, login.Token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNewAppRejectsMissingRedisForTokens(t *testing.T) {
	cfg := testConfig(t)
	cfg.Tokens.Backend = config.BackendRedis
	cfg.Redis = config.RedisConfig{Host: "127.0.0.1", Port: "1"}
	_, err := newApp(context.Background(), cfg)
	assert.Error(t, err)
}
