package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MockBlobStore implements blob storage on the local filesystem.
// This is for demo/testing without an S3-compatible backend.
type MockBlobStore struct {
	baseURL string // server URL used to build object URLs
	dir     string // local directory for objects
}

func NewMockBlobStore(baseURL, dir string) (*MockBlobStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &MockBlobStore{baseURL: baseURL, dir: dir}, nil
}

func (m *MockBlobStore) Upload(ctx context.Context, request *UploadRequest) (*UploadResult, error) {
	path := m.pathFor(request.Key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create object directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create object file: %w", err)
	}
	defer f.Close()

	size, err := io.Copy(f, request.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to write object: %w", err)
	}

	return &UploadResult{
		Key:  request.Key,
		URL:  fmt.Sprintf("%s/files/%s", m.baseURL, request.Key),
		Size: size,
	}, nil
}

func (m *MockBlobStore) Delete(ctx context.Context, key string) error {
	if err := os.Remove(m.pathFor(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

func (m *MockBlobStore) FileExists(ctx context.Context, key string) (bool, error) {
	_, err := os.Stat(m.pathFor(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Open returns a reader for a stored object; the HTTP file handler uses
// it to serve mock URLs.
func (m *MockBlobStore) Open(key string) (io.ReadCloser, error) {
	return os.Open(m.pathFor(key))
}

func (m *MockBlobStore) pathFor(key string) string {
	// Keys are slash-separated paths; keep them inside the storage dir.
	clean := filepath.Clean("/" + strings.ReplaceAll(key, "..", ""))
	return filepath.Join(m.dir, clean)
}
