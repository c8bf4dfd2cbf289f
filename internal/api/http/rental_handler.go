package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"
	"rentacar-backend/internal/service"
)

// RentalHandler exposes the booking workflow over HTTP
type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type bookVehicleRequest struct {
	VehicleID string        `json:"vehicle_id"`
	Rental    domain.Rental `json:"rental"`
}

// HandleCreate handles POST /api/v1/rentals. A vehicle_id triggers the
// booking path, which copies the vehicle state into the rental.
func (h *RentalHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req bookVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var created *domain.Rental
	var err error
	if req.VehicleID != "" {
		created, err = h.rentalSvc.BookVehicle(r.Context(), req.VehicleID, &req.Rental)
	} else {
		created, err = h.rentalSvc.CreateRental(r.Context(), &req.Rental)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Vehicle not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to create rental", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// HandleList handles GET /api/v1/rentals
func (h *RentalHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentalSvc.ListRentals(r.Context())
	if err != nil {
		// The core treats a store failure as "no data".
		rentals = []domain.Rental{}
	}
	writeJSON(w, http.StatusOK, rentals)
}

// HandleGet handles GET /api/v1/rentals/{id}
func (h *RentalHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	rental, err := h.rentalSvc.GetRental(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Rental not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load rental", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

// HandleUpdate handles PUT /api/v1/rentals/{id}
func (h *RentalHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var rental domain.Rental
	if err := json.NewDecoder(r.Body).Decode(&rental); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	rental.ID = id

	updated, err := h.rentalSvc.UpdateRental(r.Context(), &rental)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Rental not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update rental", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /api/v1/rentals/{id}
func (h *RentalHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.rentalSvc.DeleteRental(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Rental not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete rental", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
