package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func newTestRentalService(rentalRepo *MockRentalRepo, vehicleRepo *MockVehicleRepo) *rentalService {
	return &rentalService{
		rentalRepo:  rentalRepo,
		vehicleRepo: vehicleRepo,
		now:         fixedClock,
	}
}

func TestRentalService_CreateRental(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		svc := newTestRentalService(rentalRepo, new(MockVehicleRepo))
		rentalRepo.On("Create", ctx, mock.AnythingOfType("*domain.Rental")).Return("store-id-1", nil)

		created, err := svc.CreateRental(ctx, &domain.Rental{})

		assert.NoError(t, err)
		assert.Equal(t, "store-id-1", created.ID)
		assert.Equal(t, "2026-03-01T12:00:00Z", created.CreatedAt)
		assert.Equal(t, "2026-03-01T12:00:00Z", created.UpdatedAt)
	})

	t.Run("StoreFailureFallsBackToLocalID", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		svc := newTestRentalService(rentalRepo, new(MockVehicleRepo))
		rentalRepo.On("Create", ctx, mock.AnythingOfType("*domain.Rental")).Return("", errors.New("store down"))

		created, err := svc.CreateRental(ctx, &domain.Rental{})

		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(created.ID, "local_"))
	})

	t.Run("MileageAliasFolded", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		svc := newTestRentalService(rentalRepo, new(MockVehicleRepo))
		rentalRepo.On("Create", ctx, mock.AnythingOfType("*domain.Rental")).Return("id", nil)

		created, err := svc.CreateRental(ctx, &domain.Rental{
			VehicleCondition: &domain.VehicleCondition{Mileage: "45000"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "45000", created.VehicleCondition.OdometerReading)
		assert.Equal(t, "", created.VehicleCondition.Mileage)
	})
}

func TestRentalService_BookVehicle(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		vehicleRepo := new(MockVehicleRepo)
		svc := newTestRentalService(rentalRepo, vehicleRepo)

		vehicle := &domain.Vehicle{
			ID:        "veh-1",
			Brand:     "Honda",
			Model:     "Civic",
			CarNumber: "LEB-456",
			Status:    domain.VehicleStatusAvailable,
		}
		vehicleRepo.On("GetByID", ctx, "veh-1").Return(vehicle, nil)
		rentalRepo.On("Create", ctx, mock.AnythingOfType("*domain.Rental")).Return("rental-1", nil)
		vehicleRepo.On("Update", ctx, mock.MatchedBy(func(v *domain.Vehicle) bool {
			return v.Status == domain.VehicleStatusRented
		})).Return(nil)

		created, err := svc.BookVehicle(ctx, "veh-1", &domain.Rental{})

		assert.NoError(t, err)
		assert.Equal(t, "Honda", created.Vehicle.Brand)
		assert.Equal(t, "LEB-456", created.Vehicle.CarNumber)
		vehicleRepo.AssertExpectations(t)
	})

	t.Run("UnknownVehicle", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		vehicleRepo := new(MockVehicleRepo)
		svc := newTestRentalService(rentalRepo, vehicleRepo)
		vehicleRepo.On("GetByID", ctx, "missing").Return(nil, repository.ErrNotFound)

		_, err := svc.BookVehicle(ctx, "missing", &domain.Rental{})

		assert.ErrorIs(t, err, repository.ErrNotFound)
		rentalRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("StatusUpdateFailureDoesNotFailBooking", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		vehicleRepo := new(MockVehicleRepo)
		svc := newTestRentalService(rentalRepo, vehicleRepo)

		vehicle := &domain.Vehicle{ID: "veh-1", Brand: "Honda"}
		vehicleRepo.On("GetByID", ctx, "veh-1").Return(vehicle, nil)
		rentalRepo.On("Create", ctx, mock.AnythingOfType("*domain.Rental")).Return("rental-1", nil)
		vehicleRepo.On("Update", ctx, mock.AnythingOfType("*domain.Vehicle")).Return(errors.New("store down"))

		created, err := svc.BookVehicle(ctx, "veh-1", &domain.Rental{})

		assert.NoError(t, err)
		assert.Equal(t, "rental-1", created.ID)
	})
}

func TestRentalService_UpdateRental(t *testing.T) {
	ctx := context.Background()

	t.Run("StampsUpdatedAt", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		svc := newTestRentalService(rentalRepo, new(MockVehicleRepo))
		rentalRepo.On("Update", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)

		updated, err := svc.UpdateRental(ctx, &domain.Rental{ID: "r1", CreatedAt: "2026-01-01T00:00:00Z"})

		assert.NoError(t, err)
		assert.Equal(t, "2026-03-01T12:00:00Z", updated.UpdatedAt)
		assert.Equal(t, "2026-01-01T00:00:00Z", updated.CreatedAt)
	})

	t.Run("NotFound", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		svc := newTestRentalService(rentalRepo, new(MockVehicleRepo))
		rentalRepo.On("Update", ctx, mock.AnythingOfType("*domain.Rental")).Return(repository.ErrNotFound)

		_, err := svc.UpdateRental(ctx, &domain.Rental{ID: "missing"})

		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
