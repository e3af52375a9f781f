package sessions

import "context"

// Repository persists issued tokens. Get returns (nil, nil) for an unknown
// token and Delete is idempotent.
type Repository interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}
