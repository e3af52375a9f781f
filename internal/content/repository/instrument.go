package repository

import (
	"context"
	"errors"
	"time"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/content"
	"github.com/faqdesk/faqdesk/backend/go-services/pkg/metrics"
)

type instrumented struct {
	base    Store
	backend string
}

// Instrument wraps s so every Load and Save is counted and timed under the
// given backend label.
func Instrument(s Store, backend string) Store {
	return &instrumented{base: s, backend: backend}
}

func (i *instrumented) Load(ctx context.Context) (*content.Document, error) {
	start := time.Now()
	doc, err := i.base.Load(ctx)
	i.observe("load", start, err)
	return doc, err
}

func (i *instrumented) Save(ctx context.Context, doc *content.Document) error {
	start := time.Now()
	err := i.base.Save(ctx, doc)
	i.observe("save", start, err)
	return err
}

func (i *instrumented) observe(op string, start time.Time, err error) {
	metrics.StoreLatency.WithLabelValues(i.backend, op).Observe(time.Since(start).Seconds())
	outcome := "ok"
	switch {
	case errors.Is(err, ErrNotInitialized):
		outcome = "uninitialized"
	case err != nil:
		outcome = "error"
	}
	metrics.StoreOperations.WithLabelValues(i.backend, op, outcome).Inc()
}
