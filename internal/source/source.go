// Package source fetches workbooks from the local filesystem, S3 or Google
// Cloud Storage. Sources are read-only.
package source

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/config"
	"github.com/ts-wahyupratamaa/fsaw-spkuas/pkg/workbook"
)

// Scheme identifies a storage backend.
type Scheme string

const (
	SchemeFile Scheme = "file"
	SchemeS3   Scheme = "s3"
	SchemeGCS  Scheme = "gs"
)

// Ref points at one workbook object.
type Ref struct {
	Scheme Scheme
	Bucket string // empty for SchemeFile
	Key    string // object key, or file path for SchemeFile
}

func (r Ref) String() string {
	if r.Scheme == SchemeFile {
		return r.Key
	}
	return string(r.Scheme) + "://" + r.Bucket + "/" + r.Key
}

// Format returns the workbook encoding implied by the key's extension.
func (r Ref) Format() workbook.Format {
	return workbook.FormatFromPath(r.Key)
}

// Fetcher reads the raw bytes of a workbook object.
type Fetcher interface {
	Fetch(ctx context.Context, ref Ref) ([]byte, error)
}

// ParseURI parses s3://bucket/key, gs://bucket/key, file:///path or a
// plain local path.
func ParseURI(uri string) (Ref, error) {
	if uri == "" {
		return Ref{}, fmt.Errorf("empty workbook location")
	}
	if !strings.Contains(uri, "://") {
		return Ref{Scheme: SchemeFile, Key: uri}, nil
	}

	u, err := url.Parse(uri)
	if err != nil {
		return Ref{}, fmt.Errorf("parsing %q: %w", uri, err)
	}
	switch Scheme(u.Scheme) {
	case SchemeFile:
		return Ref{Scheme: SchemeFile, Key: filepath.FromSlash(u.Path)}, nil
	case SchemeS3, SchemeGCS:
		key := strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || key == "" {
			return Ref{}, fmt.Errorf("%q: want %s://bucket/key", uri, u.Scheme)
		}
		return Ref{Scheme: Scheme(u.Scheme), Bucket: u.Host, Key: key}, nil
	default:
		return Ref{}, fmt.Errorf("%q: unsupported scheme %q (want s3, gs or file)", uri, u.Scheme)
	}
}

// NewFetcher builds the fetcher for a scheme from config.
func NewFetcher(ctx context.Context, scheme Scheme, cfg config.SourcesConfig) (Fetcher, error) {
	switch scheme {
	case SchemeFile:
		return NewLocalFetcher(""), nil
	case SchemeS3:
		return NewS3Fetcher(ctx, cfg.S3)
	case SchemeGCS:
		return NewGCSFetcher(ctx, cfg.GCS)
	default:
		return nil, fmt.Errorf("unsupported scheme %q", scheme)
	}
}

// Open fetches and decodes the workbook at uri.
func Open(ctx context.Context, cfg config.SourcesConfig, uri string) (*workbook.Workbook, error) {
	ref, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}
	fetcher, err := NewFetcher(ctx, ref.Scheme, cfg)
	if err != nil {
		return nil, err
	}
	if c, ok := fetcher.(interface{ Close() error }); ok {
		defer c.Close()
	}
	return Read(ctx, fetcher, ref)
}

// Read fetches ref with f and decodes it.
func Read(ctx context.Context, f Fetcher, ref Ref) (*workbook.Workbook, error) {
	data, err := f.Fetch(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", ref, err)
	}
	wb, err := workbook.Decode(data, ref.Format())
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", ref, err)
	}
	return wb, nil
}

// LocalFetcher reads workbooks from the filesystem. Relative keys resolve
// against BaseDir when it is set.
type LocalFetcher struct {
	BaseDir string
}

// NewLocalFetcher creates a LocalFetcher rooted at the given directory.
func NewLocalFetcher(baseDir string) *LocalFetcher {
	return &LocalFetcher{BaseDir: baseDir}
}

func (f *LocalFetcher) path(key string) string {
	if f.BaseDir == "" || filepath.IsAbs(key) {
		return key
	}
	return filepath.Join(f.BaseDir, key)
}

// Fetch reads the file named by ref.Key.
func (f *LocalFetcher) Fetch(ctx context.Context, ref Ref) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(f.path(ref.Key))
}
