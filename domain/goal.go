package domain

// RiskTolerance classifies how much volatility the caller accepts.
type RiskTolerance string

const (
	RiskLow    RiskTolerance = "low"
	RiskMedium RiskTolerance = "medium"
	RiskHigh   RiskTolerance = "high"
)

type FinancialGoalInput struct {
	GoalName      string  `json:"goal_name"`
	TargetAmount  float64 `json:"target_amount,omitempty"`
	InitialAmount float64 `json:"initial_amount"`
	MonthlyAmount float64 `json:"monthly_amount"`

	InvestmentPeriod int           `json:"investment_period"`
	RiskTolerance    RiskTolerance `json:"risk_tolerance"`

	// Allocation percentages must sum to exactly 100 (±0.01).
	StockAllocation   float64 `json:"stock_allocation"`
	BondAllocation    float64 `json:"bond_allocation"`
	ETFAllocation     float64 `json:"etf_allocation"`
	DepositAllocation float64 `json:"deposit_allocation"`
}

// YearlyProjection is one row of the deterministic growth projection,
// ordered by year and never mutated after it is appended.
type YearlyProjection struct {
	Year            int     `json:"year"`
	TotalInvestment float64 `json:"total_investment"`
	PortfolioValue  float64 `json:"portfolio_value"`
	TotalReturn     float64 `json:"total_return"`
	ReturnRate      float64 `json:"return_rate"`
}

type GoalAnalysis struct {
	CanAchieveGoal          bool    `json:"can_achieve_goal"`
	Probability             float64 `json:"probability"`
	ShortfallAmount         float64 `json:"shortfall_amount"`
	RequiredMonthlyIncrease float64 `json:"required_monthly_increase"`
}

type RecommendationItem struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Priority    int    `json:"priority"` // 1=high, 2=medium, 3=low
}

type ChartData struct {
	Years            []int     `json:"years"`
	PortfolioValues  []float64 `json:"portfolio_values"`
	TotalInvestments []float64 `json:"total_investments"`
	Returns          []float64 `json:"returns"`
}

type FinancialGoalResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`

	GoalName            string             `json:"goal_name"`
	Projections         []YearlyProjection `json:"projections"`
	FinalAmount         float64            `json:"final_amount"`
	TotalInvestment     float64            `json:"total_investment"`
	TotalReturn         float64            `json:"total_return"`
	AverageAnnualReturn float64            `json:"average_annual_return"`

	GoalAnalysis    *GoalAnalysis        `json:"goal_analysis,omitempty"`
	Recommendations []RecommendationItem `json:"recommendations"`
	ChartData       ChartData            `json:"chart_data"`

	PortfolioRisk      float64  `json:"portfolio_risk"`
	RiskAdjustedReturn float64  `json:"risk_adjusted_return"`
	SharpeRatio        *float64 `json:"sharpe_ratio,omitempty"`
}
