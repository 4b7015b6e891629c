package domain

type ETFInvestmentInput struct {
	InitialAmount float64 `json:"initial_amount"`
	MonthlyAmount float64 `json:"monthly_amount"`
	DividendYield float64 `json:"dividend_yield"`
	PriceGrowth   float64 `json:"price_growth"`
	Years         int     `json:"years"`
}

type ETFInvestmentResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`

	FinalValue       float64 `json:"final_value"`
	TotalInvestment  float64 `json:"total_investment"`
	Profit           float64 `json:"profit"`
	ROI              float64 `json:"roi"`
	IRR              float64 `json:"irr"`
	AnnualizedReturn float64 `json:"annualized_return"`
	DividendIncome   float64 `json:"dividend_income"`
	CapitalGain      float64 `json:"capital_gain"`

	// Profit decomposition, each as a percentage of total profit.
	DividendRatio    float64 `json:"dividend_ratio"`
	CapitalGainRatio float64 `json:"capital_gain_ratio"`
}
