package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/content"
)

const (
	snapshotPrefix = "snapshots/"
	// SnapshotURLTTL is how long a backup download link stays valid.
	SnapshotURLTTL = time.Hour
)

// ObjectStore is the subset of MinIOStorage used for snapshots.
type ObjectStore interface {
	UploadFile(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	DownloadFile(ctx context.Context, key string) (io.ReadCloser, error)
	GetPresignedURL(ctx context.Context, key string, expires time.Duration) (string, error)
}

// Backups writes and reads content document snapshots in object storage.
type Backups struct {
	objects ObjectStore
	now     func() time.Time
}

func NewBackups(objects ObjectStore) *Backups {
	return &Backups{objects: objects, now: time.Now}
}

// SnapshotKey names the object for a snapshot taken at t.
func SnapshotKey(t time.Time) string {
	return snapshotPrefix + "content-" + t.UTC().Format("20060102T150405.000Z") + ".json"
}

// Snapshot uploads doc as pretty-printed JSON and returns its key together
// with a presigned download URL.
func (b *Backups) Snapshot(ctx context.Context, doc *content.Document) (string, string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("encode snapshot: %w", err)
	}
	key := SnapshotKey(b.now())
	if err := b.objects.UploadFile(ctx, key, bytes.NewReader(data), int64(len(data)), "application/json"); err != nil {
		return "", "", fmt.Errorf("upload snapshot: %w", err)
	}
	url, err := b.objects.GetPresignedURL(ctx, key, SnapshotURLTTL)
	if err != nil {
		return "", "", fmt.Errorf("presign snapshot: %w", err)
	}
	return key, url, nil
}

// Restore downloads and decodes the snapshot stored under key.
func (b *Backups) Restore(ctx context.Context, key string) (*content.Document, error) {
	rc, err := b.objects.DownloadFile(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("download snapshot %s: %w", key, err)
	}
	defer rc.Close()
	var doc content.Document
	if err := json.NewDecoder(rc).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", key, err)
	}
	return &doc, nil
}
