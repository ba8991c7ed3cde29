package core

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"go.uber.org/zap"

	"geniuses-backend-go/internal/models"
)

const (
	// maxUploadSize caps image uploads at 5MB.
	maxUploadSize = 5 * 1024 * 1024

	uploadMaxAttempts = 3
	uploadRetryDelay  = 1 * time.Second
)

// UploadKinds are the accepted upload destinations, each its own folder in
// the bucket.
var UploadKinds = map[string]bool{
	"profile-pictures": true,
	"cover-photos":     true,
	"logos":            true,
}

// uploadService implements UploadService against a Cloud Storage bucket.
// Unlike the search and like paths, uploads retry transient failures:
// up to three attempts with a fixed one-second delay.
type uploadService struct {
	bucket *storage.BucketHandle // nil when uploads are not configured
	logger *zap.Logger
	now    func() time.Time
}

// NewUploadService creates a new UploadService instance. bucket may be nil,
// in which case every upload fails with ErrUploadsDisabled.
func NewUploadService(bucket *storage.BucketHandle, logger *zap.Logger) UploadService {
	return &uploadService{
		bucket: bucket,
		logger: logger,
		now:    time.Now,
	}
}

// Upload validates and stores an image, returning its public URL and object
// path. The object is written under "{kind}/{uid}/{unix-ms}-{filename}".
func (s *uploadService) Upload(ctx context.Context, userID, kind, filename, contentType string, size int64, r io.Reader) (*models.ImageRef, error) {
	if s.bucket == nil {
		return nil, ErrUploadsDisabled
	}
	if !UploadKinds[kind] {
		return nil, fmt.Errorf("%w: unknown upload kind %q", ErrInvalidUpload, kind)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: file must be an image, got %q", ErrInvalidUpload, contentType)
	}
	if size > maxUploadSize {
		return nil, fmt.Errorf("%w: file size must be less than 5MB, got %d bytes", ErrInvalidUpload, size)
	}

	objectPath := fmt.Sprintf("%s/%s/%d-%s", kind, userID, s.now().UnixMilli(), sanitizeFilename(filename))
	obj := s.bucket.Object(objectPath)

	// The reader can only be consumed once, so buffer it up front and retry
	// the bucket write from the buffer.
	data, err := io.ReadAll(io.LimitReader(r, maxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload body: %w", err)
	}
	if int64(len(data)) > maxUploadSize {
		return nil, fmt.Errorf("%w: file size must be less than 5MB", ErrInvalidUpload)
	}

	err = withRetry(ctx, uploadMaxAttempts, uploadRetryDelay, func() error {
		w := obj.NewWriter(ctx)
		w.ContentType = contentType
		if _, err := w.Write(data); err != nil {
			w.Close() // best effort; the write already failed
			return err
		}
		return w.Close()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object '%s': %w", objectPath, err)
	}

	var attrs *storage.ObjectAttrs
	err = withRetry(ctx, uploadMaxAttempts, uploadRetryDelay, func() error {
		var attrsErr error
		attrs, attrsErr = obj.Attrs(ctx)
		return attrsErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attributes for '%s': %w", objectPath, err)
	}

	s.logger.Info("image uploaded",
		zap.String("uid", userID),
		zap.String("path", objectPath),
		zap.Int64("bytes", attrs.Size),
	)

	return &models.ImageRef{
		URL:  fmt.Sprintf("https://storage.googleapis.com/%s/%s", attrs.Bucket, attrs.Name),
		Path: objectPath,
	}, nil
}

// sanitizeFilename strips any path components and spaces from an uploaded
// filename.
func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" || name == "." || name == "/" {
		return "upload"
	}
	return name
}

// withRetry runs op up to attempts times, sleeping delay between attempts.
// The context aborts the wait; the last error is returned when all attempts
// fail.
func withRetry(ctx context.Context, attempts int, delay time.Duration, op func() error) error {
	var err error
	for i := 1; i <= attempts; i++ {
		if err = op(); err == nil {
			return nil
		}
		if i == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return err
}
