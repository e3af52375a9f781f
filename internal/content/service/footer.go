package service

import (
	"context"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/apperr"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/content"
)

func sectionNotFound() error { return apperr.New(apperr.ErrNotFound, "footer section not found") }
func itemNotFound() error    { return apperr.New(apperr.ErrNotFound, "footer link not found") }

// sortedSection returns a copy of sec with its items in display order.
func sortedSection(sec content.FooterSection) content.FooterSection {
	sec.Items = sortByOrder(sec.Items, itemOrder)
	return sec
}

func findSection(doc *content.Document, id string) *content.FooterSection {
	for i := range doc.FooterLinks {
		if doc.FooterLinks[i].ID == id {
			return &doc.FooterLinks[i]
		}
	}
	return nil
}

func (s *Service) ListFooterSections(ctx context.Context) ([]content.FooterSection, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	sections := sortByOrder(doc.FooterLinks, sectionOrder)
	for i := range sections {
		sections[i] = sortedSection(sections[i])
	}
	return sections, nil
}

func (s *Service) GetFooterSection(ctx context.Context, id string) (*content.FooterSection, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	sec := findSection(doc, id)
	if sec == nil {
		return nil, sectionNotFound()
	}
	out := sortedSection(*sec)
	return &out, nil
}

func (s *Service) CreateFooterSection(ctx context.Context, in FooterSectionInput) (*content.FooterSection, error) {
	if in.Title == "" {
		return nil, apperr.New(apperr.ErrMissingFields, "title is required")
	}
	var created content.FooterSection
	err := s.mutate(ctx, func(doc *content.Document) error {
		if doc.FooterLinks == nil {
			doc.FooterLinks = []content.FooterSection{}
		}
		created = content.FooterSection{
			ID:    s.newID(),
			Title: in.Title,
			Order: len(doc.FooterLinks) + 1,
			Items: []content.FooterLinkItem{},
		}
		doc.FooterLinks = append(doc.FooterLinks, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Service) UpdateFooterSection(ctx context.Context, id string, p FooterSectionPatch) (*content.FooterSection, error) {
	var updated content.FooterSection
	err := s.mutate(ctx, func(doc *content.Document) error {
		sec := findSection(doc, id)
		if sec == nil {
			return sectionNotFound()
		}
		applyString(&sec.Title, p.Title)
		applyOrder(&sec.Order, p.Order)
		updated = sortedSection(*sec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteFooterSection follows the featured card rule: NotFound only when no
// section list exists, unknown ids are ignored.
func (s *Service) DeleteFooterSection(ctx context.Context, id string) error {
	return s.mutate(ctx, func(doc *content.Document) error {
		if doc.FooterLinks == nil {
			return sectionNotFound()
		}
		kept := doc.FooterLinks[:0]
		for _, sec := range doc.FooterLinks {
			if sec.ID != id {
				kept = append(kept, sec)
			}
		}
		doc.FooterLinks = kept
		return nil
	})
}

func (s *Service) CreateFooterItem(ctx context.Context, sectionID string, in FooterItemInput) (*content.FooterLinkItem, error) {
	if in.Label == "" || in.Href == "" {
		return nil, apperr.New(apperr.ErrMissingFields, "label and href are required")
	}
	var created content.FooterLinkItem
	err := s.mutate(ctx, func(doc *content.Document) error {
		sec := findSection(doc, sectionID)
		if sec == nil {
			return sectionNotFound()
		}
		created = content.FooterLinkItem{
			ID:    s.newID(),
			Label: in.Label,
			Href:  in.Href,
			Order: len(sec.Items) + 1,
		}
		sec.Items = append(sec.Items, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *Service) UpdateFooterItem(ctx context.Context, sectionID, itemID string, p FooterItemPatch) (*content.FooterLinkItem, error) {
	var updated content.FooterLinkItem
	err := s.mutate(ctx, func(doc *content.Document) error {
		sec := findSection(doc, sectionID)
		if sec == nil {
			return sectionNotFound()
		}
		for i := range sec.Items {
			it := &sec.Items[i]
			if it.ID != itemID {
				continue
			}
			applyString(&it.Label, p.Label)
			applyString(&it.Href, p.Href)
			applyOrder(&it.Order, p.Order)
			updated = *it
			return nil
		}
		return itemNotFound()
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *Service) DeleteFooterItem(ctx context.Context, sectionID, itemID string) error {
	return s.mutate(ctx, func(doc *content.Document) error {
		sec := findSection(doc, sectionID)
		if sec == nil {
			return sectionNotFound()
		}
		for i := range sec.Items {
			if sec.Items[i].ID == itemID {
				sec.Items = append(sec.Items[:i], sec.Items[i+1:]...)
				return nil
			}
		}
		return itemNotFound()
	})
}
