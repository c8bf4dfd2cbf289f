package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"rentacar-backend/internal/logger"
)

// ErrSurfaceUnavailable is reported when no output surface can be
// acquired (the environment's popup-blocker equivalent). Generation is
// aborted with no partial writes.
var ErrSurfaceUnavailable = errors.New("output surface unavailable")

// Surface is one acquired output target. The expected invocation
// pattern is: write the rendered content, close writing, then trigger
// artifact production.
type Surface interface {
	Write(p []byte) (int, error)
	Close() error
	// TriggerPrint produces the durable artifact (printed or exported
	// page).
	TriggerPrint() error
}

// SurfaceProvider acquires display surfaces. Keeping acquisition behind
// an interface keeps the aggregator and assembler pure and testable
// without a real output target.
type SurfaceProvider interface {
	Acquire(ctx context.Context, name string) (Surface, error)
}

// Presenter owns the side effect of presenting a rendered document:
// acquire a surface, write the content, and schedule the print trigger
// after a short fixed delay so embedded images can finish loading.
type Presenter struct {
	provider SurfaceProvider
	delay    time.Duration
}

func NewPresenter(provider SurfaceProvider) *Presenter {
	return &Presenter{
		provider: provider,
		delay:    printDelayMS * time.Millisecond,
	}
}

// Present writes output to a freshly acquired surface. If the surface
// cannot be acquired the failure is reported and nothing is written.
// The print trigger fires after the presenter's fixed delay; the delay
// never depends on document size.
func (p *Presenter) Present(ctx context.Context, name string, output []byte) error {
	surface, err := p.provider.Acquire(ctx, name)
	if err != nil {
		logger.Error("Could not acquire output surface", "document", name, "error", err)
		return fmt.Errorf("%w: %v", ErrSurfaceUnavailable, err)
	}

	if _, err := surface.Write(output); err != nil {
		return fmt.Errorf("failed to write document to surface: %w", err)
	}
	if err := surface.Close(); err != nil {
		return fmt.Errorf("failed to close surface: %w", err)
	}

	time.AfterFunc(p.delay, func() {
		if err := surface.TriggerPrint(); err != nil {
			logger.Error("Print trigger failed", "document", name, "error", err)
		}
	})
	return nil
}

// FileSurfaceProvider writes documents into a local output directory.
// The print trigger is a log line; a desktop deployment would hand the
// file to the OS print spooler instead.
type FileSurfaceProvider struct {
	outputDir string
}

func NewFileSurfaceProvider(outputDir string) (*FileSurfaceProvider, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &FileSurfaceProvider{outputDir: outputDir}, nil
}

func (p *FileSurfaceProvider) Acquire(ctx context.Context, name string) (Surface, error) {
	path := filepath.Join(p.outputDir, name)
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &fileSurface{file: f, path: path}, nil
}

type fileSurface struct {
	file *os.File
	path string
}

func (s *fileSurface) Write(p []byte) (int, error) { return s.file.Write(p) }

func (s *fileSurface) Close() error { return s.file.Close() }

func (s *fileSurface) TriggerPrint() error {
	logger.Info("Document ready for printing", "path", s.path)
	return nil
}
