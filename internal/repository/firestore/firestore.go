// Package firestore implements the document store against Google Cloud
// Firestore via the Firebase Admin SDK.
package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"rentacar-backend/internal/logger"
)

const (
	rentalsCollection  = "rentals"
	vehiclesCollection = "vehicles"
)

// Store bundles the Firestore-backed repositories behind one client.
type Store struct {
	RentalRepository  *RentalRepo
	VehicleRepository *VehicleRepo

	client *firestore.Client
}

// NewStore initializes the Firebase app and opens a Firestore client.
func NewStore(ctx context.Context, projectID, credentialsFile string) (*Store, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open Firestore client: %w", err)
	}

	logger.Info("Firestore client initialized", "project", projectID)

	return &Store{
		RentalRepository:  &RentalRepo{client: client},
		VehicleRepository: &VehicleRepo{client: client},
		client:            client,
	}, nil
}

// Close releases the underlying Firestore client.
func (s *Store) Close() error {
	return s.client.Close()
}
