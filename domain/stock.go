package domain

type StockSimulationInput struct {
	InitialAmount  float64 `json:"initial_amount"`
	MonthlyAmount  float64 `json:"monthly_amount"`
	ExpectedReturn float64 `json:"expected_return"`
	Volatility     float64 `json:"volatility"`
	Years          int     `json:"years"`
	Simulations    int     `json:"simulations"`

	// Seed fixes the random sequence so results are reproducible.
	// Zero picks a time-derived seed.
	Seed int64 `json:"seed,omitempty"`
}

type StockSimulationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`

	Mean            float64 `json:"mean"`
	Percentile5     float64 `json:"percentile_5"`
	Percentile95    float64 `json:"percentile_95"`
	TotalInvestment float64 `json:"total_investment"`
	MeanReturn      float64 `json:"mean_return"`
	WorstCase       float64 `json:"worst_case"`
	BestCase        float64 `json:"best_case"`

	ProbabilityPositive float64 `json:"probability_positive"`
	ValueAtRisk         float64 `json:"value_at_risk"`
	ExpectedShortfall   float64 `json:"expected_shortfall"`

	SimulationCount    int     `json:"simulation_count"`
	VolatilityRealized float64 `json:"volatility_realized"`
}
