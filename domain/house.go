package domain

// HouseScenario selects between the two mutually exclusive holding strategies.
type HouseScenario string

const (
	// ScenarioEarlySale sells the house after SimulationYears.
	ScenarioEarlySale HouseScenario = "A"
	// ScenarioHoldToMaturity holds the house until the loan is fully repaid.
	ScenarioHoldToMaturity HouseScenario = "B"
)

type HouseInvestmentInput struct {
	HousePrice        float64       `json:"house_price"`
	DownPayment       float64       `json:"down_payment"`
	LoanRate          float64       `json:"loan_rate"`
	LoanYears         int           `json:"loan_years"`
	AppreciationRateA float64       `json:"appreciation_rate_a"`
	AppreciationRateB float64       `json:"appreciation_rate_b"`
	AnnualCost        float64       `json:"annual_cost"`
	SimulationYears   int           `json:"simulation_years"`
	Scenario          HouseScenario `json:"scenario"`
}

type HouseInvestmentResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`

	Scenario          string  `json:"scenario"`
	ActualCashOutflow float64 `json:"actual_cash_outflow"`
	ActualSaleIncome  float64 `json:"actual_sale_income"`
	CurrentValue      float64 `json:"current_value"`
	Profit            float64 `json:"profit"`
	ROI               float64 `json:"roi"`
	AnnualReturn      float64 `json:"annual_return"`

	MonthlyPayment     float64 `json:"monthly_payment"`
	LoanYears          int     `json:"loan_years"`
	InterestPaid       float64 `json:"interest_paid"`
	TotalLoanPayments  float64 `json:"total_loan_payments"`
	RemainingPrincipal float64 `json:"remaining_principal"`
	HoldingCost        float64 `json:"holding_cost"`

	LoanAmount       float64 `json:"loan_amount"`
	DownPaymentRatio float64 `json:"down_payment_ratio"`
	LeverageRatio    float64 `json:"leverage_ratio"`
}
