package source

import (
	"context"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/config"
)

// GCSFetcher reads workbooks from Google Cloud Storage.
type GCSFetcher struct {
	client *gcs.Client
}

// NewGCSFetcher creates a GCS-backed Fetcher.
// It uses Application Default Credentials (works with Workload Identity, SA keys, gcloud auth).
func NewGCSFetcher(ctx context.Context, cfg config.GCSConfig) (*GCSFetcher, error) {
	var opts []option.ClientOption
	if cfg.ProjectID != "" {
		opts = append(opts, option.WithQuotaProject(cfg.ProjectID))
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	return &GCSFetcher{client: client}, nil
}

// Fetch downloads ref.Key from ref.Bucket.
func (f *GCSFetcher) Fetch(ctx context.Context, ref Ref) ([]byte, error) {
	r, err := f.client.Bucket(ref.Bucket).Object(ref.Key).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("gcs read %s: %w", ref.Key, err)
	}
	defer r.Close()
	return io.ReadAll(r)
}

// Close releases the underlying client.
func (f *GCSFetcher) Close() error {
	return f.client.Close()
}
