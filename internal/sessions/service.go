package sessions

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Service wraps repository operations with token issuance and expiry rules.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(r Repository) *Service { return &Service{repo: r, now: time.Now} }

// WithClock replaces the time source, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CreateSession mints a random 256-bit hex token for email valid for ttl and
// stores it.
func (s *Service) CreateSession(ctx context.Context, email string, ttl time.Duration) (*Session, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	sess := &Session{
		Token:     hex.EncodeToString(b),
		Email:     email,
		ExpiresAt: s.now().Add(ttl).UnixMilli(),
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Validate returns the session for token when it exists and has not expired.
// An expired session is deleted and reported with expired=true; an unknown
// token yields (nil, false, nil).
func (s *Service) Validate(ctx context.Context, token string) (sess *Session, expired bool, err error) {
	sess, err = s.repo.Get(ctx, token)
	if err != nil || sess == nil {
		return nil, false, err
	}
	if sess.Expired(s.now()) {
		// cleanup expired session
		if err := s.repo.Delete(ctx, token); err != nil {
			return nil, true, err
		}
		return nil, true, nil
	}
	return sess, false, nil
}

func (s *Service) Delete(ctx context.Context, token string) error {
	return s.repo.Delete(ctx, token)
}
