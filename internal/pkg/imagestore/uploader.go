// Package imagestore uploads product and device images to object storage and
// hands back publicly servable URLs. The rest of the application only ever sees
// the URL string; storage details stay behind the Uploader interface.
package imagestore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

// Uploader stores an image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// GCSUploader implements Uploader on a Google Cloud Storage bucket.
type GCSUploader struct {
	bucketName string
	bucket     *storage.BucketHandle
}

// NewGCSUploader creates an Uploader writing to the named bucket.
func NewGCSUploader(ctx context.Context, bucketName string) (*GCSUploader, error) {
	if bucketName == "" {
		return nil, errors.New("imagestore: bucket name is required")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("imagestore: failed to create storage client: %w", err)
	}

	return &GCSUploader{
		bucketName: bucketName,
		bucket:     client.Bucket(bucketName),
	}, nil
}

// Upload writes the object and returns its public URL.
func (u *GCSUploader) Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	if objectPath == "" {
		return "", errors.New("imagestore: object path is required")
	}

	w := u.bucket.Object(objectPath).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("imagestore: failed to write %s: %w", objectPath, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("imagestore: failed to finalize %s: %w", objectPath, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucketName, objectPath), nil
}
