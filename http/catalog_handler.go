package http

import (
	"encoding/json"
	"net/http"

	"investment-engine/domain"
	"investment-engine/service"
)

type InvestmentTypesHandler struct{}

func NewInvestmentTypesHandler() *InvestmentTypesHandler {
	return &InvestmentTypesHandler{}
}

// ListInvestmentTypes serves the static asset-class catalog.
func (h *InvestmentTypesHandler) ListInvestmentTypes(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result := domain.InvestmentTypesResult{
		Success:         true,
		InvestmentTypes: service.InvestmentTypes(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
