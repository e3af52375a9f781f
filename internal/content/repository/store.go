package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/content"
)

var (
	// ErrNotInitialized is returned by Load when no document has ever been saved.
	ErrNotInitialized = errors.New("content document not initialized")
)

// Store persists the whole content document. Every Load returns a fresh copy;
// mutating it has no effect until Save.
type Store interface {
	Load(ctx context.Context) (*content.Document, error)
	Save(ctx context.Context, doc *content.Document) error
}

// EnsureInitialized saves an empty document when the store has none yet.
// It reports whether a document was created.
func EnsureInitialized(ctx context.Context, s Store) (bool, error) {
	_, err := s.Load(ctx)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrNotInitialized) {
		return false, err
	}
	if err := s.Save(ctx, content.NewDocument()); err != nil {
		return false, fmt.Errorf("initialize content store: %w", err)
	}
	return true, nil
}
