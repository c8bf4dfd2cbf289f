package report

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stubSurface struct {
	mu      sync.Mutex
	written []byte
	closed  bool
	printed chan struct{}
}

func newStubSurface() *stubSurface {
	return &stubSurface{printed: make(chan struct{})}
}

func (s *stubSurface) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.written = append(s.written, p...)
	return len(p), nil
}

func (s *stubSurface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *stubSurface) TriggerPrint() error {
	close(s.printed)
	return nil
}

type stubProvider struct {
	surface  *stubSurface
	err      error
	acquired int
}

func (p *stubProvider) Acquire(ctx context.Context, name string) (Surface, error) {
	p.acquired++
	if p.err != nil {
		return nil, p.err
	}
	return p.surface, nil
}

func TestPresenter(t *testing.T) {
	t.Run("WritesThenSchedulesPrint", func(t *testing.T) {
		surface := newStubSurface()
		provider := &stubProvider{surface: surface}
		presenter := NewPresenter(provider)
		presenter.delay = time.Millisecond

		err := presenter.Present(context.Background(), "agreement-AGR-007.html", []byte("<html>doc</html>"))

		assert.NoError(t, err)
		assert.Equal(t, []byte("<html>doc</html>"), surface.written)
		assert.True(t, surface.closed)

		select {
		case <-surface.printed:
		case <-time.After(time.Second):
			t.Fatal("print trigger never fired")
		}
	})

	t.Run("UnavailableSurface", func(t *testing.T) {
		provider := &stubProvider{err: errors.New("blocked")}
		presenter := NewPresenter(provider)

		err := presenter.Present(context.Background(), "doc.html", []byte("content"))

		assert.ErrorIs(t, err, ErrSurfaceUnavailable)
		assert.Equal(t, 1, provider.acquired)
	})

	t.Run("FixedDelayIndependentOfSize", func(t *testing.T) {
		small := NewPresenter(&stubProvider{surface: newStubSurface()})
		large := NewPresenter(&stubProvider{surface: newStubSurface()})
		assert.Equal(t, small.delay, large.delay)
		assert.Equal(t, printDelayMS*time.Millisecond, small.delay)
	})
}

func TestFileSurfaceProvider(t *testing.T) {
	dir := t.TempDir()
	provider, err := NewFileSurfaceProvider(dir)
	assert.NoError(t, err)

	surface, err := provider.Acquire(context.Background(), "out.html")
	assert.NoError(t, err)

	_, err = surface.Write([]byte("hello"))
	assert.NoError(t, err)
	assert.NoError(t, surface.Close())
	assert.NoError(t, surface.TriggerPrint())
}
