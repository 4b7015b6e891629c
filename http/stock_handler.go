package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"investment-engine/domain"
	"investment-engine/observability"
	"investment-engine/service"
)

type StockSimulationHandler struct {
	service *service.StockSimulationService
}

func NewStockSimulationHandler(service *service.StockSimulationService) *StockSimulationHandler {
	return &StockSimulationHandler{service: service}
}

func (h *StockSimulationHandler) CalculateStockSimulation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.StockSimulationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		slog.Error("failed to decode stock simulation request", "error", err)
		observability.CalculationErrors.WithLabelValues("stock_simulation", "decode").Inc()
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CalculateStockSimulation(r.Context(), input)
	if err != nil {
		if r.Context().Err() != nil {
			// Client went away mid-simulation.
			observability.CalculationErrors.WithLabelValues("stock_simulation", "cancelled").Inc()
			return
		}
		observability.CalculationRequests.WithLabelValues("stock_simulation", "invalid_input").Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	recordOutcome("stock_simulation", result.Success)

	// Encode into a buffer first so a late failure still yields a clean 500.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(result); err != nil {
		slog.Error("failed to encode stock simulation response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write stock simulation response", "error", err)
	}
}
