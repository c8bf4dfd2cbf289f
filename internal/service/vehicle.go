package service

import (
	"context"
	"time"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	now         func() time.Time
}

func NewVehicleService(vehicleRepo repository.VehicleRepository) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		now:         time.Now,
	}
}

func (s *vehicleService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}

func (s *vehicleService) GetVehicle(ctx context.Context, id string) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *vehicleService) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	nowISO := s.now().UTC().Format(time.RFC3339)
	if vehicle.CreatedAt == "" {
		vehicle.CreatedAt = nowISO
	}
	vehicle.UpdatedAt = nowISO
	if vehicle.Status == "" {
		vehicle.Status = domain.VehicleStatusAvailable
	}

	id, err := s.vehicleRepo.Create(ctx, vehicle)
	if err != nil {
		return nil, err
	}
	vehicle.ID = id
	return vehicle, nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	vehicle.UpdatedAt = s.now().UTC().Format(time.RFC3339)
	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, id string) error {
	return s.vehicleRepo.Delete(ctx, id)
}
