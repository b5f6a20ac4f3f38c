package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Uploader stores an image blob and returns a publicly retrievable URL.
type Uploader interface {
	Upload(ctx context.Context, contentType string, data []byte) (string, error)
}

// LocalUploader writes blobs to a directory served as static files under
// baseURL. Write-once: uploaded files are never mutated.
type LocalUploader struct {
	dir     string
	baseURL string
}

func NewLocalUploader(dir, baseURL string) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir %s: %w", dir, err)
	}
	return &LocalUploader{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (u *LocalUploader) Upload(_ context.Context, contentType string, data []byte) (string, error) {
	name := uuid.New().String() + extensionFor(contentType)
	path := filepath.Join(u.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing upload %s: %w", path, err)
	}

	return u.baseURL + "/" + name, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}
