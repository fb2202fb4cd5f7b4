package pembahasan

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/btw-edu/pembahasan-lambda/internal/category"
	"github.com/btw-edu/pembahasan-lambda/internal/config"
	"github.com/btw-edu/pembahasan-lambda/internal/question"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// Preview menjalankan pipeline untuk satu record lepas tanpa menyentuh
// spreadsheet, untuk memeriksa hasil sebelum menjalankan batch.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Record) == 0 {
		http.Error(w, "record is required", http.StatusBadRequest)
		return
	}

	row := question.RowFromRecord(req.Record)
	explanation, err := h.service.Generate(r.Context(), row)
	if err != nil {
		var excluded *category.ExcludedError
		if errors.As(err, &excluded) {
			config.JSON(w, http.StatusOK, map[string]interface{}{
				"skipped": true,
				"reason":  excluded.Reason,
			})
			return
		}
		if errors.Is(err, ErrNoCorrectAnswer) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		var unparseable *UnparseableError
		if errors.As(err, &unparseable) {
			log.WithField("raw", unparseable.Raw).Warn("format respons AI tidak valid")
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		log.WithError(err).Error("gagal membuat pembahasan")
		http.Error(w, "failed to generate explanation", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"skipped":     false,
		"explanation": explanation,
	})
}
