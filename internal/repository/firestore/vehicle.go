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

type VehicleRepo struct {
	client *firestore.Client
}

func (v *VehicleRepo) List(ctx context.Context) ([]domain.Vehicle, error) {
	logger.StoreCall("list", vehiclesCollection)

	iter := v.client.Collection(vehiclesCollection).OrderBy("createdAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	vehicles := []domain.Vehicle{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.StoreResult("list", len(vehicles), err)
			return nil, fmt.Errorf("failed to list vehicles: %w", err)
		}
		var vehicle domain.Vehicle
		if err := doc.DataTo(&vehicle); err != nil {
			return nil, fmt.Errorf("failed to decode vehicle: %w", err)
		}
		vehicle.ID = doc.Ref.ID
		vehicles = append(vehicles, vehicle)
	}
	logger.StoreResult("list", len(vehicles), nil)
	return vehicles, nil
}

func (v *VehicleRepo) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	snap, err := v.client.Collection(vehiclesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle %s: %w", id, err)
	}
	var vehicle domain.Vehicle
	if err := snap.DataTo(&vehicle); err != nil {
		return nil, fmt.Errorf("failed to decode vehicle %s: %w", id, err)
	}
	vehicle.ID = snap.Ref.ID
	return &vehicle, nil
}

func (v *VehicleRepo) Create(ctx context.Context, vehicle *domain.Vehicle) (string, error) {
	ref, _, err := v.client.Collection(vehiclesCollection).Add(ctx, vehicle)
	if err != nil {
		return "", fmt.Errorf("failed to create vehicle: %w", err)
	}
	return ref.ID, nil
}

func (v *VehicleRepo) Update(ctx context.Context, vehicle *domain.Vehicle) error {
	_, err := v.client.Collection(vehiclesCollection).Doc(vehicle.ID).Set(ctx, vehicle)
	if err != nil {
		return fmt.Errorf("failed to update vehicle %s: %w", vehicle.ID, err)
	}
	return nil
}

func (v *VehicleRepo) Delete(ctx context.Context, id string) error {
	_, err := v.client.Collection(vehiclesCollection).Doc(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle %s: %w", id, err)
	}
	return nil
}
