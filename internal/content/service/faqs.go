package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/apperr"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/content"
)

// MinSearchLength is the shortest query SearchFAQs will match against.
const MinSearchLength = 2

func faqNotFound() error { return apperr.New(apperr.ErrNotFound, "FAQ not found") }

func (s *Service) ListFAQs(ctx context.Context) ([]content.FAQ, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return sortByOrder(doc.FAQs, faqOrder), nil
}

func (s *Service) GetFAQ(ctx context.Context, id string) (*content.FAQ, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doc.FAQs {
		if doc.FAQs[i].ID == id {
			return &doc.FAQs[i], nil
		}
	}
	return nil, faqNotFound()
}

// ListFAQsByCategory returns the category's FAQs; an unknown category simply
// has none.
func (s *Service) ListFAQsByCategory(ctx context.Context, categoryID string) ([]content.FAQ, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return sortByOrder(faqsIn(doc, categoryID), faqOrder), nil
}

// GroupedFAQs joins every category, in display order, with its sorted FAQs.
func (s *Service) GroupedFAQs(ctx context.Context) ([]content.CategoryWithFAQs, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	cats := sortByOrder(doc.Categories, categoryOrder)
	out := make([]content.CategoryWithFAQs, 0, len(cats))
	for _, c := range cats {
		out = append(out, content.CategoryWithFAQs{
			Category: c,
			FAQs:     sortByOrder(faqsIn(doc, c.ID), faqOrder),
		})
	}
	return out, nil
}

func faqsIn(doc *content.Document, categoryID string) []content.FAQ {
	var out []content.FAQ
	for _, f := range doc.FAQs {
		if f.CategoryID == categoryID {
			out = append(out, f)
		}
	}
	return out
}

func categoryExists(doc *content.Document, id string) bool {
	for _, c := range doc.Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (s *Service) CreateFAQ(ctx context.Context, in FAQInput) (*content.FAQ, error) {
	if in.CategoryID == "" || in.Question == "" || in.Answer == "" {
		return nil, apperr.New(apperr.ErrMissingFields, "categoryId, question and answer are required")
	}

	var created content.FAQ
	err := s.mutate(ctx, func(doc *content.Document) error {
		if !categoryExists(doc, in.CategoryID) {
			return apperr.New(apperr.ErrInvalidReference, "category not found")
		}
		next := 1
		for i, f := range faqsIn(doc, in.CategoryID) {
			if i == 0 || f.Order+1 > next {
				next = f.Order + 1
			}
		}
		now := s.timestamp()
		created = content.FAQ{
			ID:         s.newID(),
			CategoryID: in.CategoryID,
			Question:   in.Question,
			Answer:     in.Answer,
			Order:      next,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		doc.FAQs = append(doc.FAQs, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateFAQ merges p into the FAQ and always stamps updatedAt. The category
// reference is not re-validated on update.
func (s *Service) UpdateFAQ(ctx context.Context, id string, p FAQPatch) (*content.FAQ, error) {
	var updated content.FAQ
	err := s.mutate(ctx, func(doc *content.Document) error {
		for i := range doc.FAQs {
			f := &doc.FAQs[i]
			if f.ID != id {
				continue
			}
			applyString(&f.CategoryID, p.CategoryID)
			applyString(&f.Question, p.Question)
			applyString(&f.Answer, p.Answer)
			applyOrder(&f.Order, p.Order)
			f.UpdatedAt = s.timestamp()
			updated = *f
			return nil
		}
		return faqNotFound()
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Service) DeleteFAQ(ctx context.Context, id string) error {
	return s.mutate(ctx, func(doc *content.Document) error {
		for i := range doc.FAQs {
			if doc.FAQs[i].ID == id {
				doc.FAQs = append(doc.FAQs[:i], doc.FAQs[i+1:]...)
				return nil
			}
		}
		return faqNotFound()
	})
}

// ReorderFAQs applies each {id, order} pair to the matching FAQ and saves
// once. Unknown ids are skipped silently.
func (s *Service) ReorderFAQs(ctx context.Context, items []ReorderItem) error {
	return s.mutate(ctx, func(doc *content.Document) error {
		now := s.timestamp()
		for _, it := range items {
			for i := range doc.FAQs {
				if doc.FAQs[i].ID == it.ID {
					doc.FAQs[i].Order = it.Order
					doc.FAQs[i].UpdatedAt = now
					break
				}
			}
		}
		return nil
	})
}

// SearchFAQs returns FAQs whose question or answer contains q, ignoring
// case. Queries shorter than MinSearchLength match nothing.
func (s *Service) SearchFAQs(ctx context.Context, q string) ([]content.FAQ, error) {
	if utf8.RuneCountInString(q) < MinSearchLength {
		return []content.FAQ{}, nil
	}
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(q)
	var out []content.FAQ
	for _, f := range doc.FAQs {
		if strings.Contains(strings.ToLower(f.Question), term) || strings.Contains(strings.ToLower(f.Answer), term) {
			out = append(out, f)
		}
	}
	return sortByOrder(out, faqOrder), nil
}
