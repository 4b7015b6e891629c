package domain

type BondDepositInput struct {
	Principal     float64 `json:"principal"`
	InterestRate  float64 `json:"interest_rate"`
	Years         int     `json:"years"`
	IsCompound    bool    `json:"is_compound"`
	InflationRate float64 `json:"inflation_rate"`
}

type BondDepositResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`

	FinalValue      float64 `json:"final_value"`
	RealValue       float64 `json:"real_value"`
	NominalReturn   float64 `json:"nominal_return"`
	RealReturn      float64 `json:"real_return"`
	InflationImpact float64 `json:"inflation_impact"`
	TotalInterest   float64 `json:"total_interest"`
	InflationLoss   float64 `json:"inflation_loss"`
}
