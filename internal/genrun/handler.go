package genrun

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/btw-edu/pembahasan-lambda/internal/config"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) StartRun(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req StartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Error("body permintaan run tidak valid")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	run, err := h.service.Start(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidSpreadsheet) ||
			errors.Is(err, ErrWorksheetRequired) ||
			errors.Is(err, ErrUnknownMode) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("gagal menjalankan run")
		http.Error(w, "failed to start run", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, run)
}

func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id := chi.URLParam(r, "id")
	run, err := h.service.Get(r.Context(), id)
	if err != nil {
		log.WithError(err).Error("gagal memuat run")
		http.Error(w, "failed to fetch run", http.StatusInternalServerError)
		return
	}
	if run == nil {
		http.Error(w, "run not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, run)
}

func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	runs, err := h.service.List(r.Context())
	if err != nil {
		log.WithError(err).Error("gagal memuat daftar run")
		http.Error(w, "failed to list runs", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, runs)
}
