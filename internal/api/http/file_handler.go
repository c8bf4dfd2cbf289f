package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"rentacar-backend/internal/storage"
)

// FileHandler serves objects held by the mock blob store, so the URLs
// it hands out resolve during local development.
type FileHandler struct {
	mockStore *storage.MockBlobStore
}

func NewFileHandler(mockStore *storage.MockBlobStore) *FileHandler {
	return &FileHandler{mockStore: mockStore}
}

// HandleDownload handles GET /files/{key:.*}
func (h *FileHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if key == "" {
		http.Error(w, "Missing key", http.StatusBadRequest)
		return
	}

	f, err := h.mockStore.Open(key)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer f.Close()

	if strings.HasSuffix(key, ".html") {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	} else if strings.HasSuffix(key, ".json") {
		w.Header().Set("Content-Type", "application/json")
	}
	_, _ = io.Copy(w, f)
}
