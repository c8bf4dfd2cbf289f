package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/logger"
	"rentacar-backend/internal/repository"
)

type RentalRepo struct {
	client *firestore.Client
}

func (r *RentalRepo) query() firestore.Query {
	return r.client.Collection(rentalsCollection).OrderBy("createdAt", firestore.Desc)
}

func (r *RentalRepo) List(ctx context.Context) ([]domain.Rental, error) {
	logger.StoreCall("list", rentalsCollection)

	iter := r.query().Documents(ctx)
	defer iter.Stop()

	rentals, err := decodeRentals(iter)
	logger.StoreResult("list", len(rentals), err)
	if err != nil {
		return nil, fmt.Errorf("failed to list rentals: %w", err)
	}
	return rentals, nil
}

func (r *RentalRepo) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	snap, err := r.client.Collection(rentalsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get rental %s: %w", id, err)
	}
	var rental domain.Rental
	if err := snap.DataTo(&rental); err != nil {
		return nil, fmt.Errorf("failed to decode rental %s: %w", id, err)
	}
	rental.ID = snap.Ref.ID
	rental.Normalize()
	return &rental, nil
}

func (r *RentalRepo) Create(ctx context.Context, rental *domain.Rental) (string, error) {
	logger.StoreCall("create", rentalsCollection)
	ref, _, err := r.client.Collection(rentalsCollection).Add(ctx, rental)
	if err != nil {
		logger.StoreResult("create", 0, err)
		return "", fmt.Errorf("failed to create rental: %w", err)
	}
	logger.StoreResult("create", 1, nil, "id", ref.ID)
	return ref.ID, nil
}

func (r *RentalRepo) Update(ctx context.Context, rental *domain.Rental) error {
	logger.StoreCall("update", rentalsCollection, "id", rental.ID)
	_, err := r.client.Collection(rentalsCollection).Doc(rental.ID).Set(ctx, rental)
	logger.StoreResult("update", 1, err)
	if err != nil {
		return fmt.Errorf("failed to update rental %s: %w", rental.ID, err)
	}
	return nil
}

func (r *RentalRepo) Delete(ctx context.Context, id string) error {
	logger.StoreCall("delete", rentalsCollection, "id", id)
	_, err := r.client.Collection(rentalsCollection).Doc(id).Delete(ctx)
	logger.StoreResult("delete", 1, err)
	if err != nil {
		return fmt.Errorf("failed to delete rental %s: %w", id, err)
	}
	return nil
}

// Subscribe streams collection snapshots to fn until the returned
// Unsubscribe is called. A stream error delivers the previous value
// (empty on the first failure) instead of propagating, so consumers
// always hold a well-typed slice.
func (r *RentalRepo) Subscribe(ctx context.Context, fn func([]domain.Rental)) repository.Unsubscribe {
	ctx, cancel := context.WithCancel(ctx)

	go func() {
		previous := []domain.Rental{}
		snaps := r.query().Snapshots(ctx)
		defer snaps.Stop()

		for {
			snap, err := snaps.Next()
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				logger.Error("Rental subscription failed", "error", err)
				fn(previous)
				return
			}
			rentals, err := decodeRentals(snap.Documents)
			if err != nil {
				logger.Error("Failed to decode rental snapshot", "error", err)
				fn(previous)
				continue
			}
			previous = rentals
			fn(rentals)
		}
	}()

	return repository.Unsubscribe(cancel)
}

func decodeRentals(iter *firestore.DocumentIterator) ([]domain.Rental, error) {
	rentals := []domain.Rental{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return rentals, nil
		}
		if err != nil {
			return rentals, err
		}
		var rental domain.Rental
		if err := doc.DataTo(&rental); err != nil {
			return rentals, err
		}
		rental.ID = doc.Ref.ID
		rental.Normalize()
		rentals = append(rentals, rental)
	}
}
