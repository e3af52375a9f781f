package sessions

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/jsonfile"
)

type fileEntry struct {
	Email     string `json:"email"`
	ExpiresAt int64  `json:"expiresAt"`
}

// FileRepository keeps every token in one JSON object {token: {email, expiresAt}}.
// A missing file is an empty map. Each operation reads and rewrites the
// whole file under mu.
type FileRepository struct {
	path string
	mu   sync.Mutex
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) read() (map[string]fileEntry, error) {
	m := map[string]fileEntry{}
	if err := jsonfile.Read(r.path, &m); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]fileEntry{}, nil
		}
		return nil, fmt.Errorf("read tokens: %w", err)
	}
	return m, nil
}

func (r *FileRepository) write(m map[string]fileEntry) error {
	if err := jsonfile.Write(r.path, m); err != nil {
		return fmt.Errorf("write tokens: %w", err)
	}
	return nil
}

func (r *FileRepository) Create(ctx context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, err := r.read()
	if err != nil {
		return err
	}
	m[s.Token] = fileEntry{Email: s.Email, ExpiresAt: s.ExpiresAt}
	return r.write(m)
}

func (r *FileRepository) Get(ctx context.Context, token string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, err := r.read()
	if err != nil {
		return nil, err
	}
	e, ok := m[token]
	if !ok {
		return nil, nil
	}
	return &Session{Token: token, Email: e.Email, ExpiresAt: e.ExpiresAt}, nil
}

func (r *FileRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, err := r.read()
	if err != nil {
		return err
	}
	if _, ok := m[token]; !ok {
		return nil
	}
	delete(m, token)
	return r.write(m)
}
