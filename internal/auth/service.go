// Package auth implements admin login, logout and token verification on top
// of an IdentityProvider and the token store.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/apperr"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/sessions"
	"github.com/faqdesk/faqdesk/backend/go-services/pkg/logger"
	"github.com/faqdesk/faqdesk/backend/go-services/pkg/metrics"
)

// LoginResult is returned by a successful Login. ExpiresAt is Unix millis.
type LoginResult struct {
	Token     string
	ExpiresAt int64
	Email     string
}

// Verification is the outcome of checking a token. Absent and expired tokens
// are reported here, not as errors.
type Verification struct {
	Valid   bool
	Email   string
	Expired bool
}

type Service struct {
	idp      IdentityProvider
	sessions *sessions.Service
	ttl      time.Duration
}

// NewService wires the identity provider to the token store. A non-positive
// ttl falls back to sessions.DefaultTTL.
func NewService(idp IdentityProvider, s *sessions.Service, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = sessions.DefaultTTL
	}
	return &Service{idp: idp, sessions: s, ttl: ttl}
}

func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		metrics.LoginAttempts.WithLabelValues("missing_fields").Inc()
		return nil, apperr.New(apperr.ErrMissingFields, "email and password are required")
	}
	id, err := s.idp.Authenticate(ctx, email, password)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("rejected").Inc()
		logger.Warnf("rejected admin login for %q", email)
		return nil, err
	}
	sess, err := s.sessions.CreateSession(ctx, id.Email, s.ttl)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.LoginAttempts.WithLabelValues("success").Inc()
	return &LoginResult{Token: sess.Token, ExpiresAt: sess.ExpiresAt, Email: sess.Email}, nil
}

// Logout forgets token. Unknown or empty tokens are not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

func (s *Service) Verify(ctx context.Context, token string) (Verification, error) {
	if token == "" {
		return Verification{}, nil
	}
	sess, expired, err := s.sessions.Validate(ctx, token)
	if err != nil {
		return Verification{}, err
	}
	if sess == nil {
		return Verification{Expired: expired}, nil
	}
	return Verification{Valid: true, Email: sess.Email}, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func BearerToken(header string) (string, bool) {
	tok, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tok == "" {
		return "", false
	}
	return tok, true
}
