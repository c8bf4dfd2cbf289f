package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires all HTTP routes. fileHandler may be nil when the
// blob store is not the local mock.
func NewRouter(rentalHandler *RentalHandler, vehicleHandler *VehicleHandler, reportHandler *ReportHandler, fileHandler *FileHandler) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/rentals", rentalHandler.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/rentals", rentalHandler.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}", rentalHandler.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}", rentalHandler.HandleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/rentals/{id}", rentalHandler.HandleDelete).Methods(http.MethodDelete)

	api.HandleFunc("/vehicles", vehicleHandler.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/vehicles", vehicleHandler.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id}", vehicleHandler.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id}", vehicleHandler.HandleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/vehicles/{id}", vehicleHandler.HandleDelete).Methods(http.MethodDelete)

	api.HandleFunc("/rentals/{id}/agreement", reportHandler.HandleAgreement).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id}/agreement/publish", reportHandler.HandlePublish).Methods(http.MethodPost)
	api.HandleFunc("/reports/clients", reportHandler.HandleDirectory).Methods(http.MethodGet)

	if fileHandler != nil {
		r.HandleFunc("/files/{key:.*}", fileHandler.HandleDownload).Methods(http.MethodGet)
	}

	return r
}
