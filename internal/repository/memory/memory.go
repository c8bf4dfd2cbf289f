// Package memory implements the document store in process memory. It
// backs local development and tests, where a Firestore project is not
// available.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"
)

type Store struct {
	RentalRepository  *RentalRepo
	VehicleRepository *VehicleRepo
}

func NewStore() *Store {
	return &Store{
		RentalRepository:  &RentalRepo{},
		VehicleRepository: &VehicleRepo{},
	}
}

type RentalRepo struct {
	mu          sync.RWMutex
	rentals     []domain.Rental
	subscribers map[int]func([]domain.Rental)
	nextSub     int
}

func (r *RentalRepo) List(ctx context.Context) ([]domain.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked(), nil
}

func (r *RentalRepo) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rental := range r.rentals {
		if rental.ID == id {
			found := rental
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *RentalRepo) Create(ctx context.Context, rental *domain.Rental) (string, error) {
	r.mu.Lock()
	stored := *rental
	stored.ID = uuid.New().String()
	// Newest first, matching the store's createdAt-descending order.
	r.rentals = append([]domain.Rental{stored}, r.rentals...)
	r.mu.Unlock()

	r.notify()
	return stored.ID, nil
}

func (r *RentalRepo) Update(ctx context.Context, rental *domain.Rental) error {
	r.mu.Lock()
	found := false
	for i := range r.rentals {
		if r.rentals[i].ID == rental.ID {
			r.rentals[i] = *rental
			found = true
			break
		}
	}
	r.mu.Unlock()

	if !found {
		return repository.ErrNotFound
	}
	r.notify()
	return nil
}

func (r *RentalRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	found := false
	for i := range r.rentals {
		if r.rentals[i].ID == id {
			r.rentals = append(r.rentals[:i], r.rentals[i+1:]...)
			found = true
			break
		}
	}
	r.mu.Unlock()

	if !found {
		return repository.ErrNotFound
	}
	r.notify()
	return nil
}

func (r *RentalRepo) Subscribe(ctx context.Context, fn func([]domain.Rental)) repository.Unsubscribe {
	r.mu.Lock()
	if r.subscribers == nil {
		r.subscribers = make(map[int]func([]domain.Rental))
	}
	id := r.nextSub
	r.nextSub++
	r.subscribers[id] = fn
	current := r.snapshotLocked()
	r.mu.Unlock()

	fn(current)

	return func() {
		r.mu.Lock()
		delete(r.subscribers, id)
		r.mu.Unlock()
	}
}

func (r *RentalRepo) snapshotLocked() []domain.Rental {
	out := make([]domain.Rental, len(r.rentals))
	copy(out, r.rentals)
	return out
}

func (r *RentalRepo) notify() {
	r.mu.RLock()
	current := r.snapshotLocked()
	subs := make([]func([]domain.Rental), 0, len(r.subscribers))
	for _, fn := range r.subscribers {
		subs = append(subs, fn)
	}
	r.mu.RUnlock()

	for _, fn := range subs {
		fn(current)
	}
}

type VehicleRepo struct {
	mu       sync.RWMutex
	vehicles []domain.Vehicle
}

func (v *VehicleRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]domain.Vehicle, len(v.vehicles))
	copy(out, v.vehicles)
	return out, nil
}

func (v *VehicleRepo) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	for _, vehicle := range v.vehicles {
		if vehicle.ID == id {
			found := vehicle
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (v *VehicleRepo) Create(ctx context.Context, vehicle *domain.Vehicle) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	stored := *vehicle
	stored.ID = uuid.New().String()
	v.vehicles = append([]domain.Vehicle{stored}, v.vehicles...)
	return stored.ID, nil
}

func (v *VehicleRepo) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.vehicles {
		if v.vehicles[i].ID == vehicle.ID {
			v.vehicles[i] = *vehicle
			return nil
		}
	}
	return repository.ErrNotFound
}

func (v *VehicleRepo) Delete(ctx context.Context, id string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.vehicles {
		if v.vehicles[i].ID == id {
			v.vehicles = append(v.vehicles[:i], v.vehicles[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
