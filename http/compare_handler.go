package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"investment-engine/domain"
	"investment-engine/observability"
	"investment-engine/service"
)

type BatchCompareHandler struct {
	service *service.CompareService
}

func NewBatchCompareHandler(service *service.CompareService) *BatchCompareHandler {
	return &BatchCompareHandler{service: service}
}

func (h *BatchCompareHandler) BatchCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.BatchCompareInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		observability.CalculationErrors.WithLabelValues("batch_compare", "decode").Inc()
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.BatchCompare(r.Context(), input)
	if err != nil {
		observability.CalculationRequests.WithLabelValues("batch_compare", "invalid_input").Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	recordOutcome("batch_compare", result.Success)

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(result); err != nil {
		slog.Error("failed to encode batch compare response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write batch compare response", "error", err)
	}
}
