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

type FinancialGoalHandler struct {
	service *service.GoalPlannerService
}

func NewFinancialGoalHandler(service *service.GoalPlannerService) *FinancialGoalHandler {
	return &FinancialGoalHandler{service: service}
}

func (h *FinancialGoalHandler) SimulateFinancialGoal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.FinancialGoalInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		slog.Error("failed to decode financial goal request", "error", err)
		observability.CalculationErrors.WithLabelValues("financial_goal", "decode").Inc()
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CalculateFinancialGoal(input)
	if err != nil {
		observability.CalculationRequests.WithLabelValues("financial_goal", "invalid_input").Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	recordOutcome("financial_goal", result.Success)

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(result); err != nil {
		slog.Error("failed to encode financial goal response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write financial goal response", "error", err)
	}
}
