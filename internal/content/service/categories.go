package service

import (
	"context"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/apperr"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/content"
)

func categoryNotFound() error { return apperr.New(apperr.ErrNotFound, "category not found") }

func (s *Service) ListCategories(ctx context.Context) ([]content.Category, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return sortByOrder(doc.Categories, categoryOrder), nil
}

func (s *Service) GetCategory(ctx context.Context, id string) (*content.Category, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doc.Categories {
		if doc.Categories[i].ID == id {
			return &doc.Categories[i], nil
		}
	}
	return nil, categoryNotFound()
}

// GetCategoryBySlug returns the first category carrying slug. Slugs are not
// unique, so duplicates resolve to whichever is stored first.
func (s *Service) GetCategoryBySlug(ctx context.Context, slug string) (*content.Category, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doc.Categories {
		if doc.Categories[i].Slug == slug {
			return &doc.Categories[i], nil
		}
	}
	return nil, categoryNotFound()
}

func (s *Service) CreateCategory(ctx context.Context, in CategoryInput) (*content.Category, error) {
	if in.Name == "" {
		return nil, apperr.New(apperr.ErrMissingFields, "name is required")
	}
	slug := in.Slug
	if slug == "" {
		slug = Slugify(in.Name)
	}

	var created content.Category
	err := s.mutate(ctx, func(doc *content.Document) error {
		created = content.Category{
			ID:    s.newID(),
			Name:  in.Name,
			Slug:  slug,
			Order: len(doc.Categories) + 1,
		}
		doc.Categories = append(doc.Categories, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id string, p CategoryPatch) (*content.Category, error) {
	var updated content.Category
	err := s.mutate(ctx, func(doc *content.Document) error {
		for i := range doc.Categories {
			c := &doc.Categories[i]
			if c.ID != id {
				continue
			}
			applyString(&c.Name, p.Name)
			applyString(&c.Slug, p.Slug)
			applyOrder(&c.Order, p.Order)
			updated = *c
			return nil
		}
		return categoryNotFound()
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteCategory removes an unused category. Categories still referenced by
// a FAQ are kept and a conflict is reported.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	return s.mutate(ctx, func(doc *content.Document) error {
		idx := -1
		for i := range doc.Categories {
			if doc.Categories[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return categoryNotFound()
		}
		for _, f := range doc.FAQs {
			if f.CategoryID == id {
				return apperr.New(apperr.ErrConflict, "cannot delete a category that still has FAQs")
			}
		}
		doc.Categories = append(doc.Categories[:idx], doc.Categories[idx+1:]...)
		return nil
	})
}
