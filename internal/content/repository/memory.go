package repository

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/content"
)

// MemoryRepo is an in-process Store used for tests and throwaway instances.
// It copies on the way in and out, so it behaves like a serialized store.
type MemoryRepo struct {
	mu  sync.RWMutex
	raw []byte
}

// NewMemoryRepo returns a store holding doc. A nil doc yields an
// uninitialized store.
func NewMemoryRepo(doc *content.Document) *MemoryRepo {
	m := &MemoryRepo{}
	if doc != nil {
		m.raw, _ = json.Marshal(doc)
	}
	return m
}

func (m *MemoryRepo) Load(ctx context.Context) (*content.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.raw == nil {
		return nil, ErrNotInitialized
	}
	var doc content.Document
	if err := json.Unmarshal(m.raw, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (m *MemoryRepo) Save(ctx context.Context, doc *content.Document) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.raw = b
	return nil
}
