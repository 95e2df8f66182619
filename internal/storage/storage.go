// Package storage uploads binary assets (profile photos, resumes) to an
// S3-compatible object store and hands back stable retrieval URLs.
package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
)

// Uploader stores the body under key and returns a public retrieval URL.
type Uploader interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error)
}

// RandomKey returns a date-bucketed object key, e.g. uploads/2026/9/1/<uuid>.
func RandomKey() string {
	d := time.Now()
	return fmt.Sprintf("uploads/%d/%d/%d/%v", d.Year(), int(d.Month()), d.Day(), uuid.New())
}

// UploadMultipart streams a multipart file part to the uploader under a
// fresh random key.
func UploadMultipart(ctx context.Context, up Uploader, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload %q: %w", fh.Filename, err)
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return up.Upload(ctx, RandomKey(), contentType, f)
}
