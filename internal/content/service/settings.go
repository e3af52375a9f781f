package service

import (
	"context"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/content"
)

// GetSettings returns the site settings, or an empty object when none were saved.
func (s *Service) GetSettings(ctx context.Context) (*content.Settings, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if doc.Settings == nil {
		return &content.Settings{}, nil
	}
	return doc.Settings, nil
}

func (s *Service) UpdateSettings(ctx context.Context, p SettingsPatch) (*content.Settings, error) {
	var updated content.Settings
	err := s.mutate(ctx, func(doc *content.Document) error {
		if doc.Settings == nil {
			doc.Settings = &content.Settings{}
		}
		applyString(&doc.Settings.SupportLink, p.SupportLink)
		applyString(&doc.Settings.SupportLabel, p.SupportLabel)
		updated = *doc.Settings
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
