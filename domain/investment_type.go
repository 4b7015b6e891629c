package domain

// InvestmentTypeInfo is a static catalog entry describing one asset class.
type InvestmentTypeInfo struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	ExpectedReturn string  `json:"expected_return"`
	Risk           string  `json:"risk"`
	Description    string  `json:"description"`
	MinAmount      float64 `json:"min_amount"`
	Liquidity      string  `json:"liquidity"`
}

type InvestmentTypesResult struct {
	Success         bool                 `json:"success"`
	Message         string               `json:"message,omitempty"`
	InvestmentTypes []InvestmentTypeInfo `json:"investment_types"`
}
