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

type ETFInvestmentHandler struct {
	service *service.ETFInvestmentService
}

func NewETFInvestmentHandler(service *service.ETFInvestmentService) *ETFInvestmentHandler {
	return &ETFInvestmentHandler{service: service}
}

func (h *ETFInvestmentHandler) CalculateETFInvestment(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.ETFInvestmentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		observability.CalculationErrors.WithLabelValues("etf_investment", "decode").Inc()
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CalculateETFInvestment(input)
	if err != nil {
		observability.CalculationRequests.WithLabelValues("etf_investment", "invalid_input").Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	recordOutcome("etf_investment", result.Success)

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(result); err != nil {
		slog.Error("failed to encode etf investment response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write etf investment response", "error", err)
	}
}
