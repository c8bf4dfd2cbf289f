package storage

import (
	"context"
	"io"
)

// BlobStore is the object-store surface the application consumes:
// uploads return a URL to embed as an image source or hand out as a
// report link. Callers never learn which backend holds the bytes.
type BlobStore interface {
	Upload(ctx context.Context, request *UploadRequest) (*UploadResult, error)
	Delete(ctx context.Context, key string) error
	FileExists(ctx context.Context, key string) (bool, error)
}

type UploadRequest struct {
	Key         string
	Reader      io.Reader
	ContentType string
	Size        int64
}

type UploadResult struct {
	Key  string
	URL  string
	Size int64
}

// Config selects and parameterizes the blob-store backend.
type Config struct {
	Type      string `yaml:"type"`       // "mock" or "s3"
	Region    string `yaml:"region"`     // S3 region ("auto" for R2-compatible stores)
	Bucket    string `yaml:"bucket"`     // S3 bucket name
	Endpoint  string `yaml:"endpoint"`   // optional custom endpoint (R2, MinIO)
	CDNDomain string `yaml:"cdn_domain"` // optional public domain for object URLs
	LocalDir  string `yaml:"local_dir"`  // directory for mock storage
	BaseURL   string `yaml:"base_url"`   // server base URL for mock URLs
}
