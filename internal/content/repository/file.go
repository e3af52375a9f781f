package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/content"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/jsonfile"
)

// FileRepo keeps the document in a single pretty-printed JSON file, read in
// full on every Load and replaced atomically on every Save.
type FileRepo struct {
	path string
}

func NewFileRepo(path string) *FileRepo {
	return &FileRepo{path: path}
}

func (f *FileRepo) Path() string { return f.path }

func (f *FileRepo) Load(ctx context.Context) (*content.Document, error) {
	var doc content.Document
	if err := jsonfile.Read(f.path, &doc); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotInitialized, f.path)
		}
		return nil, fmt.Errorf("load content: %w", err)
	}
	return &doc, nil
}

func (f *FileRepo) Save(ctx context.Context, doc *content.Document) error {
	if err := jsonfile.Write(f.path, doc); err != nil {
		return fmt.Errorf("save content: %w", err)
	}
	return nil
}
