package auth

import (
	"context"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/apperr"
)

// Identity is the authenticated operator.
type Identity struct {
	Email string `json:"email"`
}

// IdentityProvider checks a credential pair. Implementations return an error
// wrapping apperr.ErrInvalidCredentials on mismatch.
type IdentityProvider interface {
	Authenticate(ctx context.Context, email, password string) (*Identity, error)
}

// StaticProvider accepts exactly one configured email/password pair. The
// comparison is a plain string match with no hashing and no lockout.
type StaticProvider struct {
	email    string
	password string
}

func NewStaticProvider(email, password string) *StaticProvider {
	return &StaticProvider{email: email, password: password}
}

func (p *StaticProvider) Authenticate(ctx context.Context, email, password string) (*Identity, error) {
	if p.email == "" || email != p.email || password != p.password {
		return nil, apperr.New(apperr.ErrInvalidCredentials, "invalid credentials")
	}
	return &Identity{Email: p.email}, nil
}
