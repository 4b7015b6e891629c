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

type BondDepositHandler struct {
	service *service.BondDepositService
}

func NewBondDepositHandler(service *service.BondDepositService) *BondDepositHandler {
	return &BondDepositHandler{service: service}
}

func (h *BondDepositHandler) CalculateBondDeposit(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.BondDepositInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		observability.CalculationErrors.WithLabelValues("bond_deposit", "decode").Inc()
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CalculateBondDeposit(input)
	if err != nil {
		observability.CalculationRequests.WithLabelValues("bond_deposit", "invalid_input").Inc()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	recordOutcome("bond_deposit", result.Success)

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(result); err != nil {
		slog.Error("failed to encode bond deposit response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write bond deposit response", "error", err)
	}
}

// recordOutcome counts a finished calculation, separating structured
// computation failures from successful runs.
func recordOutcome(calculator string, success bool) {
	status := "ok"
	if !success {
		status = "failed"
		observability.CalculationErrors.WithLabelValues(calculator, "computation").Inc()
	}
	observability.CalculationRequests.WithLabelValues(calculator, status).Inc()
}
