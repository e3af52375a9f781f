package service

import (
	"context"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/apperr"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/content"
)

// Fallbacks for optional featured card fields.
const (
	DefaultCardIcon  = "star"
	DefaultCardLink  = "#"
	DefaultCardColor = "#6366f1"
)

func cardNotFound() error { return apperr.New(apperr.ErrNotFound, "featured card not found") }

func (s *Service) ListFeaturedCards(ctx context.Context) ([]content.FeaturedCard, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return sortByOrder(doc.FeaturedCards, cardOrder), nil
}

func (s *Service) GetFeaturedCard(ctx context.Context, id string) (*content.FeaturedCard, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doc.FeaturedCards {
		if doc.FeaturedCards[i].ID == id {
			return &doc.FeaturedCards[i], nil
		}
	}
	return nil, cardNotFound()
}

func (s *Service) CreateFeaturedCard(ctx context.Context, in FeaturedCardInput) (*content.FeaturedCard, error) {
	if in.Title == "" || in.Description == "" {
		return nil, apperr.New(apperr.ErrMissingFields, "title and description are required")
	}
	card := content.FeaturedCard{
		Title:       in.Title,
		Description: in.Description,
		Icon:        orDefault(in.Icon, DefaultCardIcon),
		Link:        orDefault(in.Link, DefaultCardLink),
		Color:       orDefault(in.Color, DefaultCardColor),
	}

	err := s.mutate(ctx, func(doc *content.Document) error {
		if doc.FeaturedCards == nil {
			doc.FeaturedCards = []content.FeaturedCard{}
		}
		card.ID = s.newID()
		card.Order = len(doc.FeaturedCards) + 1
		doc.FeaturedCards = append(doc.FeaturedCards, card)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (s *Service) UpdateFeaturedCard(ctx context.Context, id string, p FeaturedCardPatch) (*content.FeaturedCard, error) {
	var updated content.FeaturedCard
	err := s.mutate(ctx, func(doc *content.Document) error {
		for i := range doc.FeaturedCards {
			c := &doc.FeaturedCards[i]
			if c.ID != id {
				continue
			}
			applyString(&c.Title, p.Title)
			applyString(&c.Description, p.Description)
			applyString(&c.Icon, p.Icon)
			applyString(&c.Link, p.Link)
			applyString(&c.Color, p.Color)
			applyOrder(&c.Order, p.Order)
			updated = *c
			return nil
		}
		return cardNotFound()
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteFeaturedCard removes the card with id. It reports NotFound only when
// no card list has ever been stored; an unknown id is a no-op.
func (s *Service) DeleteFeaturedCard(ctx context.Context, id string) error {
	return s.mutate(ctx, func(doc *content.Document) error {
		if doc.FeaturedCards == nil {
			return cardNotFound()
		}
		kept := doc.FeaturedCards[:0]
		for _, c := range doc.FeaturedCards {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		doc.FeaturedCards = kept
		return nil
	})
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
