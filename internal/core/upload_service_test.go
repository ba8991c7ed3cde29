package core

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

func TestUpload_DisabledWithoutBucket(t *testing.T) {
	svc := NewUploadService(nil, testLogger())

	_, err := svc.Upload(context.Background(), "uid1", "logos", "logo.png", "image/png", 10, strings.NewReader("0123456789"))
	if !errors.Is(err, ErrUploadsDisabled) {
		t.Fatalf("error = %v, want ErrUploadsDisabled", err)
	}
}

// Validation rejects bad requests before any bucket round-trip, so an
// unauthenticated client-side bucket handle is enough here.
func TestUpload_Validation(t *testing.T) {
	client, err := storage.NewClient(context.Background(), option.WithoutAuthentication())
	if err != nil {
		t.Fatalf("storage client: %v", err)
	}
	defer client.Close()
	svc := NewUploadService(client.Bucket("test-bucket"), testLogger())

	tests := []struct {
		name        string
		kind        string
		contentType string
		size        int64
	}{
		{"unknown kind", "tarballs", "image/png", 10},
		{"not an image", "logos", "application/pdf", 10},
		{"too large", "logos", "image/png", maxUploadSize + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upload(context.Background(), "uid1", tt.kind, "f.bin", tt.contentType, tt.size, strings.NewReader("x"))
			if !errors.Is(err, ErrInvalidUpload) {
				t.Fatalf("error = %v, want ErrInvalidUpload", err)
			}
		})
	}
}

func TestWithRetry(t *testing.T) {
	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := withRetry(context.Background(), 3, time.Millisecond, func() error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 3 {
			t.Errorf("calls = %d, want 3", calls)
		}
	})

	t.Run("gives up after the attempt budget", func(t *testing.T) {
		wantErr := errors.New("persistent")
		calls := 0
		err := withRetry(context.Background(), 3, time.Millisecond, func() error {
			calls++
			return wantErr
		})
		if !errors.Is(err, wantErr) {
			t.Fatalf("error = %v, want the last op error", err)
		}
		if calls != 3 {
			t.Errorf("calls = %d, want 3", calls)
		}
	})

	t.Run("context cancellation aborts the wait", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		calls := 0
		err := withRetry(ctx, 3, time.Minute, func() error {
			calls++
			return errors.New("transient")
		})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("error = %v, want context.Canceled", err)
		}
		if calls != 1 {
			t.Errorf("calls = %d, want 1 before the aborted wait", calls)
		}
	})
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"logo.png", "logo.png"},
		{"my logo.png", "my_logo.png"},
		{"../../etc/passwd", "passwd"},
		{"C:\\Users\\me\\pic.jpg", "pic.jpg"},
		{"", "upload"},
		{".", "upload"},
	}
	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
