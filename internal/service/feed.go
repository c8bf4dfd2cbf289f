package service

import (
	"context"
	"sync"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"
)

// RentalFeed keeps a live snapshot of the rental collection via the
// store's subscription. Report generation reads from the feed when one
// is wired, so directory reports reflect the stream the booking client
// sees rather than a fresh query. The store's error semantics carry
// through: a failed stream leaves the previous (possibly empty)
// snapshot in place.
type RentalFeed struct {
	mu      sync.RWMutex
	current []domain.Rental
	unsub   repository.Unsubscribe
}

func NewRentalFeed(ctx context.Context, repo repository.RentalRepository) *RentalFeed {
	f := &RentalFeed{current: []domain.Rental{}}
	f.unsub = repo.Subscribe(ctx, func(rentals []domain.Rental) {
		f.mu.Lock()
		f.current = rentals
		f.mu.Unlock()
	})
	return f
}

// Current returns the latest snapshot. The returned slice is shared;
// callers must not mutate it.
func (f *RentalFeed) Current() []domain.Rental {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.current
}

func (f *RentalFeed) Close() {
	if f.unsub != nil {
		f.unsub()
	}
}
