package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/apperr"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/sessions"
	"github.com/faqdesk/faqdesk/backend/go-services/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "s3cret"
)

func newTestService(t *testing.T, now *time.Time) *Service {
	t.Helper()
	repo := sessions.NewFileRepository(filepath.Join(t.TempDir(), "tokens.json"))
	ss := sessions.NewService(repo).WithClock(func() time.Time { return *now })
	return NewService(NewStaticProvider(adminEmail, adminPassword), ss, 0)
}

func TestLogin_MissingFields(t *testing.T) {
	now := time.Now()
	svc := newTestService(t, &now)
	_, err := svc.Login(context.Background(), adminEmail, "")
	require.True(t, errors.Is(err, apperr.ErrMissingFields))
	_, err = svc.Login(context.Background(), "", adminPassword)
	require.True(t, errors.Is(err, apperr.ErrMissingFields))
}

func TestLogin_WrongPassword(t *testing.T) {
	now := time.Now()
	svc := newTestService(t, &now)
	before := testutil.ToFloat64(metrics.LoginAttempts.WithLabelValues("rejected"))

	res, err := svc.Login(context.Background(), adminEmail, "nope")
	require.True(t, errors.Is(err, apperr.ErrInvalidCredentials))
	require.Nil(t, res)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.LoginAttempts.WithLabelValues("rejected")))

	_, err = svc.Login(context.Background(), "ADMIN@example.com", adminPassword)
	require.True(t, errors.Is(err, apperr.ErrInvalidCredentials))
}

func TestLoginVerifyLogout(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestService(t, &now)

	res, err := svc.Login(ctx, adminEmail, adminPassword)
	require.NoError(t, err)
	assert.Len(t, res.Token, 64)
	assert.Equal(t, now.Add(24*time.Hour).UnixMilli(), res.ExpiresAt)
	assert.Equal(t, adminEmail, res.Email)

	v, err := svc.Verify(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, Verification{Valid: true, Email: adminEmail}, v)

	require.NoError(t, svc.Logout(ctx, res.Token))
	v, err = svc.Verify(ctx, res.Token)
	require.NoError(t, err)
	assert.False(t, v.Valid)

	// logout stays idempotent
	require.NoError(t, svc.Logout(ctx, res.Token))
	require.NoError(t, svc.Logout(ctx, ""))
}

func TestVerify_Expired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestService(t, &now)

	res, err := svc.Login(ctx, adminEmail, adminPassword)
	require.NoError(t, err)

	now = now.Add(25 * time.Hour)
	v, err := svc.Verify(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, Verification{Expired: true}, v)

	// the expired entry is gone, so it now reads as unknown
	v, err = svc.Verify(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, Verification{}, v)
}

func TestStaticProvider_EmptyConfigRejectsEverything(t *testing.T) {
	_, err := NewStaticProvider("", "").Authenticate(context.Background(), "", "")
	require.True(t, errors.Is(err, apperr.ErrInvalidCredentials))
}

func TestBearerToken(t *testing.T) {
	tok, ok := BearerToken("Bearer abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", tok)

	for _, h := range []string{"", "Bearer ", "bearer abc", "Token abc", "abc"} {
		_, ok := BearerToken(h)
		assert.False(t, ok, h)
	}
}
