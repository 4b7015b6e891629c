package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"investment-engine/domain"
	"investment-engine/repository"
	"investment-engine/service"
)

func newGoalHandler() *FinancialGoalHandler {
	svc := service.NewGoalPlannerService(repository.NewMockCache(), 0.02)
	return NewFinancialGoalHandler(svc)
}

func TestSimulateFinancialGoalHandler_OK(t *testing.T) {

	handler := newGoalHandler()

	body := []byte(`{
		"goal_name": "house fund",
		"target_amount": 5000000,
		"initial_amount": 100000,
		"monthly_amount": 20000,
		"investment_period": 10,
		"risk_tolerance": "medium",
		"stock_allocation": 40,
		"bond_allocation": 30,
		"etf_allocation": 20,
		"deposit_allocation": 10
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/api/v1/financial-goal",
		bytes.NewBuffer(body),
	)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()

	handler.SimulateFinancialGoal(w, req)

	resp := w.Result()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result domain.FinancialGoalResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !result.Success {
		t.Errorf("expected success=true")
	}

	if len(result.Projections) != 10 {
		t.Errorf("expected 10 projections, got %d", len(result.Projections))
	}

	if result.GoalAnalysis == nil {
		t.Errorf("expected goal analysis for a positive target")
	}
}

func TestSimulateFinancialGoalHandler_RequiresJSONContentType(t *testing.T) {

	handler := newGoalHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/api/v1/financial-goal",
		bytes.NewBufferString(`{}`),
	)

	w := httptest.NewRecorder()

	handler.SimulateFinancialGoal(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", w.Code)
	}
}

func TestSimulateFinancialGoalHandler_ValidationError(t *testing.T) {

	handler := newGoalHandler()

	body := []byte(`{
		"goal_name": "broken",
		"monthly_amount": 100,
		"investment_period": 10,
		"stock_allocation": 60,
		"bond_allocation": 60
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/api/v1/financial-goal",
		bytes.NewBuffer(body),
	)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()

	handler.SimulateFinancialGoal(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
