package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"rentacar-backend/internal/report"
	"rentacar-backend/internal/repository"
	"rentacar-backend/internal/service"
)

// ReportHandler serves generated documents
type ReportHandler struct {
	reportSvc service.ReportService
}

func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// HandleAgreement handles GET /api/v1/rentals/{id}/agreement and
// returns the printable page. ?present=1 also writes the document to
// the configured output surface.
func (h *ReportHandler) HandleAgreement(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if r.URL.Query().Get("present") == "1" {
		if err := h.reportSvc.PresentAgreement(r.Context(), id); err != nil {
			h.reportError(w, err)
			return
		}
	}

	output, err := h.reportSvc.GenerateAgreement(r.Context(), id)
	if err != nil {
		h.reportError(w, err)
		return
	}
	writeHTML(w, output)
}

// HandleDirectory handles GET /api/v1/reports/clients
func (h *ReportHandler) HandleDirectory(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("present") == "1" {
		if err := h.reportSvc.PresentDirectory(r.Context()); err != nil {
			h.reportError(w, err)
			return
		}
	}

	output, err := h.reportSvc.GenerateDirectory(r.Context())
	if err != nil {
		h.reportError(w, err)
		return
	}
	writeHTML(w, output)
}

type publishResponse struct {
	URL string `json:"url"`
}

// HandlePublish handles POST /api/v1/rentals/{id}/agreement/publish:
// uploads the agreement to the blob store and emails the link.
func (h *ReportHandler) HandlePublish(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	email := r.URL.Query().Get("email")

	url, err := h.reportSvc.PublishAgreement(r.Context(), id, email)
	if err != nil {
		h.reportError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, publishResponse{URL: url})
}

func (h *ReportHandler) reportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		http.Error(w, "Rental not found", http.StatusNotFound)
	case errors.Is(err, report.ErrSurfaceUnavailable):
		// The popup-blocked case: report it, nothing was written.
		http.Error(w, "Please allow an output surface to generate the document", http.StatusConflict)
	default:
		http.Error(w, "Failed to generate document", http.StatusInternalServerError)
	}
}

func writeHTML(w http.ResponseWriter, output []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(output)
}
