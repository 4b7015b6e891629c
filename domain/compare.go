package domain

// BatchCompareInput carries independently supplied parameter sets for the
// three calculators aggregated by the batch comparison.
type BatchCompareInput struct {
	Bond  BondDepositInput     `json:"bond"`
	ETF   ETFInvestmentInput   `json:"etf"`
	Stock StockSimulationInput `json:"stock"`
}

// ComparisonEntry holds the headline figures of one calculator.
type ComparisonEntry struct {
	Type         string  `json:"type"`
	FinalValue   float64 `json:"final_value"`
	TotalReturn  float64 `json:"total_return"`
	AnnualReturn float64 `json:"annual_return"`
	RiskLevel    string  `json:"risk_level"`

	// Only populated for the stock simulation.
	WorstCase float64 `json:"worst_case,omitempty"`
	BestCase  float64 `json:"best_case,omitempty"`
}

type CompareSummary struct {
	TotalScenarios int    `json:"total_scenarios"`
	Recommendation string `json:"recommendation"`
}

type BatchCompareResult struct {
	Success           bool                       `json:"success"`
	Message           string                     `json:"message,omitempty"`
	ComparisonResults map[string]ComparisonEntry `json:"comparison_results"`
	Summary           CompareSummary             `json:"summary"`
}
