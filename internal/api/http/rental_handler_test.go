package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"
)

func newTestRouter(rentalSvc *MockRentalService, reportSvc *MockReportService) http.Handler {
	return newVehicleTestRouter(rentalSvc, new(MockVehicleService), reportSvc)
}

func newVehicleTestRouter(rentalSvc *MockRentalService, vehicleSvc *MockVehicleService, reportSvc *MockReportService) http.Handler {
	return NewRouter(NewRentalHandler(rentalSvc), NewVehicleHandler(vehicleSvc), NewReportHandler(reportSvc), nil)
}

func TestRentalHandler_HandleCreate(t *testing.T) {
	t.Run("DirectCreate", func(t *testing.T) {
		rentalSvc := new(MockRentalService)
		router := newTestRouter(rentalSvc, new(MockReportService))

		created := &domain.Rental{ID: "r1", Client: domain.Client{FullName: "Ali Khan"}}
		rentalSvc.On("CreateRental", mock.Anything, mock.AnythingOfType("*domain.Rental")).Return(created, nil)

		body := bytes.NewBufferString(`{"rental": {"client": {"full_name": "Ali Khan", "cnic": "12345-1"}}}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals", body)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var got domain.Rental
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "r1", got.ID)
		rentalSvc.AssertNotCalled(t, "BookVehicle", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("BookingPathWithVehicleID", func(t *testing.T) {
		rentalSvc := new(MockRentalService)
		router := newTestRouter(rentalSvc, new(MockReportService))

		created := &domain.Rental{ID: "r1", Vehicle: domain.VehicleSnapshot{Brand: "Honda"}}
		rentalSvc.On("BookVehicle", mock.Anything, "veh-1", mock.AnythingOfType("*domain.Rental")).Return(created, nil)

		body := bytes.NewBufferString(`{"vehicle_id": "veh-1", "rental": {}}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals", body)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		rentalSvc.AssertExpectations(t)
	})

	t.Run("UnknownVehicle", func(t *testing.T) {
		rentalSvc := new(MockRentalService)
		router := newTestRouter(rentalSvc, new(MockReportService))
		rentalSvc.On("BookVehicle", mock.Anything, "missing", mock.AnythingOfType("*domain.Rental")).
			Return(nil, repository.ErrNotFound)

		body := bytes.NewBufferString(`{"vehicle_id": "missing", "rental": {}}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals", body)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		router := newTestRouter(new(MockRentalService), new(MockReportService))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRentalHandler_HandleList(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		rentalSvc := new(MockRentalService)
		router := newTestRouter(rentalSvc, new(MockReportService))
		rentalSvc.On("ListRentals", mock.Anything).Return([]domain.Rental{{ID: "r1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/rentals", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []domain.Rental
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got, 1)
	})

	t.Run("StoreFailureReturnsEmptyList", func(t *testing.T) {
		rentalSvc := new(MockRentalService)
		router := newTestRouter(rentalSvc, new(MockReportService))
		rentalSvc.On("ListRentals", mock.Anything).Return(nil, errors.New("store down"))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/rentals", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestRentalHandler_HandleGet(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		rentalSvc := new(MockRentalService)
		router := newTestRouter(rentalSvc, new(MockReportService))
		rentalSvc.On("GetRental", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/rentals/missing", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRentalHandler_HandleDelete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		rentalSvc := new(MockRentalService)
		router := newTestRouter(rentalSvc, new(MockReportService))
		rentalSvc.On("DeleteRental", mock.Anything, "r1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/rentals/r1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
