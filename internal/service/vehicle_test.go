package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rentacar-backend/internal/domain"
)

func TestVehicleService_CreateVehicle(t *testing.T) {
	ctx := context.Background()

	t.Run("StampsDefaults", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		svc := &vehicleService{vehicleRepo: vehicleRepo, now: fixedClock}
		vehicleRepo.On("Create", ctx, mock.AnythingOfType("*domain.Vehicle")).Return("veh-1", nil)

		created, err := svc.CreateVehicle(ctx, &domain.Vehicle{Brand: "Honda"})

		assert.NoError(t, err)
		assert.Equal(t, "veh-1", created.ID)
		assert.Equal(t, domain.VehicleStatusAvailable, created.Status)
		assert.Equal(t, "2026-03-01T12:00:00Z", created.CreatedAt)
		assert.Equal(t, "2026-03-01T12:00:00Z", created.UpdatedAt)
	})

	t.Run("ExplicitStatusKept", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		svc := &vehicleService{vehicleRepo: vehicleRepo, now: fixedClock}
		vehicleRepo.On("Create", ctx, mock.AnythingOfType("*domain.Vehicle")).Return("veh-1", nil)

		created, err := svc.CreateVehicle(ctx, &domain.Vehicle{Status: domain.VehicleStatusMaintenance})

		assert.NoError(t, err)
		assert.Equal(t, domain.VehicleStatusMaintenance, created.Status)
	})
}
