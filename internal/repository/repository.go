package repository

import (
	"context"
	"errors"

	"rentacar-backend/internal/domain"
)

// ErrNotFound is returned when a document id does not exist in its
// collection.
var ErrNotFound = errors.New("document not found")

// Unsubscribe stops a subscription's callbacks.
type Unsubscribe func()

// RentalRepository is the document-store surface the core consumes.
// Implementations deliver well-typed slices: a backend failure inside
// Subscribe hands the consumer the previous (possibly empty) value
// instead of an error, so aggregation and assembly always receive
// usable input.
type RentalRepository interface {
	List(ctx context.Context) ([]domain.Rental, error)
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	Create(ctx context.Context, rental *domain.Rental) (string, error)
	Update(ctx context.Context, rental *domain.Rental) error
	Delete(ctx context.Context, id string) error
	Subscribe(ctx context.Context, fn func([]domain.Rental)) Unsubscribe
}

type VehicleRepository interface {
	List(ctx context.Context) ([]domain.Vehicle, error)
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	Create(ctx context.Context, vehicle *domain.Vehicle) (string, error)
	Update(ctx context.Context, vehicle *domain.Vehicle) error
	Delete(ctx context.Context, id string) error
}
