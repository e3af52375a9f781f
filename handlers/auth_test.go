package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/auth"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/sessions"
	"github.com/faqdesk/faqdesk/backend/go-services/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newAuthRouter(t *testing.T, repo sessions.Repository, clk *clock) *gin.Engine {
	t.Helper()
	ss := sessions.NewService(repo).WithClock(clk.now)
	svc := auth.NewService(auth.NewStaticProvider("admin@example.com", "pw"), ss, 0)

	r := gin.New()
	NewAuthHandler(svc).Register(r.Group("/api"))
	r.GET("/api/protected", middleware.RequireAuth(svc), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString(middleware.AuthEmailKey)})
	})
	return r
}

func send(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
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
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin_Validation(t *testing.T) {
	clk := &clock{t: time.Now()}
	r := newAuthRouter(t, sessions.NewFileRepository(filepath.Join(t.TempDir(), "tokens.json")), clk)

	w := send(r, http.MethodPost, "/api/auth/login", `{"email":"admin@example.com"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = send(r, http.MethodPost, "/api/auth/login", `{"email":"admin@example.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotContains(t, body, "token")
	assert.Equal(t, "invalid credentials", body["error"])
}

func TestLoginVerifyLogoutFlow(t *testing.T) {
	clk := &clock{t: time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)}
	r := newAuthRouter(t, sessions.NewFileRepository(filepath.Join(t.TempDir(), "tokens.json")), clk)

	w := send(r, http.MethodPost, "/api/auth/login", `{"email":"admin@example.com","password":"pw"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Success   bool   `json:"success"`
		Token     string `json:"token"`
		ExpiresAt int64  `json:"expiresAt"`
		User      struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	assert.True(t, login.Success)
	assert.Len(t, login.Token, 64)
	assert.Equal(t, clk.t.Add(24*time.Hour).UnixMilli(), login.ExpiresAt)
	assert.Equal(t, "admin@example.com", login.User.Email)

	w = send(r, http.MethodGet, "/api/auth/verify", "", login.Token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"valid":true,"user":{"email":"admin@example.com"}}`, w.Body.String())

	w = send(r, http.MethodGet, "/api/protected", "", login.Token)
	require.Equal(t, http.StatusOK, w.Code)

	w = send(r, http.MethodPost, "/api/auth/logout", "", login.Token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	w = send(r, http.MethodGet, "/api/auth/verify", "", login.Token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":false`)

	w = send(r, http.MethodGet, "/api/protected", "", login.Token)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// logout without or with a stale token still succeeds
	w = send(r, http.MethodPost, "/api/auth/logout", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	w = send(r, http.MethodPost, "/api/auth/logout", "", login.Token)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestVerify_ExpiredTokenWithRedisStore(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})

	clk := &clock{t: time.Now()}
	r := newAuthRouter(t, sessions.NewRedisRepository(client, "test:token:"), clk)

	w := send(r, http.MethodPost, "/api/auth/login", `{"email":"admin@example.com","password":"pw"}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	var login map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	token := login["token"].(string)

	w = send(r, http.MethodGet, "/api/auth/verify", "", token)
	require.Equal(t, http.StatusOK, w.Code)

	// the server clock passes expiresAt before Redis evicts the key
	clk.t = clk.t.Add(24*time.Hour + time.Second)
	w = send(r, http.MethodGet, "/api/auth/verify", "", token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"valid":false,"error":"token expired"}`, w.Body.String())
	assert.False(t, m.Exists("test:token:"+token))
}

func TestVerify_MissingToken(t *testing.T) {
	clk := &clock{t: time.Now()}
	r := newAuthRouter(t, sessions.NewFileRepository(filepath.Join(t.TempDir(), "tokens.json")), clk)

	w := send(r, http.MethodGet, "/api/auth/verify", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"valid":false,"error":"token not provided"}`, w.Body.String())
}
