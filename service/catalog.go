package service

import "investment-engine/domain"

// InvestmentTypes returns the static catalog of supported asset classes.
func InvestmentTypes() []domain.InvestmentTypeInfo {
	return []domain.InvestmentTypeInfo{
		{
			ID:             "stock",
			Name:           "Stocks",
			ExpectedReturn: "12%",
			Risk:           "High",
			Description:    "Equity positions with high growth potential and high volatility",
			MinAmount:      10000,
			Liquidity:      "High",
		},
		{
			ID:             "bond",
			Name:           "Bonds",
			ExpectedReturn: "4%",
			Risk:           "Low",
			Description:    "Fixed-income instruments with stable payouts, suited to conservative investors",
			MinAmount:      50000,
			Liquidity:      "Medium",
		},
		{
			ID:             "etf",
			Name:           "ETFs",
			ExpectedReturn: "8%",
			Risk:           "Medium",
			Description:    "Index-tracking exchange-traded funds spreading risk across holdings",
			MinAmount:      5000,
			Liquidity:      "High",
		},
		{
			ID:             "house",
			Name:           "Real estate",
			ExpectedReturn: "5%",
			Risk:           "Medium",
			Description:    "Property holdings with inflation protection but low liquidity",
			MinAmount:      2000000,
			Liquidity:      "Low",
		},
		{
			ID:             "deposit",
			Name:           "Fixed deposits",
			ExpectedReturn: "2%",
			Risk:           "Very low",
			Description:    "Bank time deposits preserving capital at modest returns",
			MinAmount:      1000,
			Liquidity:      "Low",
		},
	}
}
