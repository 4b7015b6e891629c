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

type HouseInvestmentHandler struct {
	service *service.HouseInvestmentService
}

func NewHouseInvestmentHandler(service *service.HouseInvestmentService) *HouseInvestmentHandler {
	return &HouseInvestmentHandler{service: service}
}

func (h *HouseInvestmentHandler) CalculateHouseInvestment(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.HouseInvestmentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		observability.CalculationErrors.WithLabelValues("house_investment", "decode").Inc()
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CalculateHouseInvestment(input)
	if err != nil {
		observability.CalculationRequests.WithLabelValues("house_investment", "invalid_input").Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	recordOutcome("house_investment", result.Success)

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(result); err != nil {
		slog.Error("failed to encode house investment response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write house investment response", "error", err)
	}
}
