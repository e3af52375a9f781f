package service

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/content"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/content/repository"
	"github.com/google/uuid"
)

// Service implements the content operations used by the handler layer on top
// of a whole-document Store.
//
// Every mutation loads the document, applies the change and saves it back
// while holding mu, so concurrent writers in this process cannot lose each
// other's updates. Reads load a fresh copy without locking.
type Service struct {
	store repository.Store
	mu    sync.Mutex
	now   func() time.Time
	newID func() string
}

type Option func(*Service)

// WithClock overrides the time source used for createdAt/updatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides identifier generation.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) { s.newID = gen }
}

func New(store repository.Store, opts ...Option) *Service {
	s := &Service{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// timestamp returns the current time at the precision persisted for FAQs.
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func (s *Service) load(ctx context.Context) (*content.Document, error) {
	return s.store.Load(ctx)
}

// mutate runs fn against a freshly loaded document and persists it when fn
// succeeds. Nothing is written when fn returns an error.
func (s *Service) mutate(ctx context.Context, fn func(doc *content.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.store.Save(ctx, doc)
}

// Export returns the whole stored document.
func (s *Service) Export(ctx context.Context) (*content.Document, error) {
	return s.load(ctx)
}

// sortByOrder sorts a copy of items ascending by order, keeping stored order
// for ties. A nil input yields an empty, non-nil slice.
func sortByOrder[T any](items []T, order func(T) int) []T {
	out := make([]T, len(items))
	copy(out, items)
	slices.SortStableFunc(out, func(a, b T) int { return cmp.Compare(order(a), order(b)) })
	return out
}

func categoryOrder(c content.Category) int     { return c.Order }
func faqOrder(f content.FAQ) int               { return f.Order }
func cardOrder(c content.FeaturedCard) int     { return c.Order }
func sectionOrder(s content.FooterSection) int { return s.Order }
func itemOrder(i content.FooterLinkItem) int   { return i.Order }
