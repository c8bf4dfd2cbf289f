package service

import (
	"context"

	"rentacar-backend/internal/domain"
)

type RentalService interface {
	CreateRental(ctx context.Context, rental *domain.Rental) (*domain.Rental, error)
	BookVehicle(ctx context.Context, vehicleID string, rental *domain.Rental) (*domain.Rental, error)
	GetRental(ctx context.Context, id string) (*domain.Rental, error)
	ListRentals(ctx context.Context) ([]domain.Rental, error)
	UpdateRental(ctx context.Context, rental *domain.Rental) (*domain.Rental, error)
	DeleteRental(ctx context.Context, id string) error
}

type VehicleService interface {
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error)
	CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error
}

type ReportService interface {
	// GenerateAgreement renders the printable agreement for one rental.
	GenerateAgreement(ctx context.Context, rentalID string) ([]byte, error)
	// GenerateDirectory renders the all-clients report over every
	// stored rental. A store failure degrades to an empty report, not
	// an error.
	GenerateDirectory(ctx context.Context) ([]byte, error)
	// PresentAgreement generates and writes the agreement to an output
	// surface, scheduling the print trigger.
	PresentAgreement(ctx context.Context, rentalID string) error
	PresentDirectory(ctx context.Context) error
	// PublishAgreement uploads the rendered agreement to the blob store
	// and emails the link; returns the public URL.
	PublishAgreement(ctx context.Context, rentalID, recipientEmail string) (string, error)
}

type EmailService interface {
	SendAgreementReady(ctx context.Context, email, name, link string) error
}
