package service

import (
	"errors"
	"fmt"
	"math"

	"investment-engine/domain"
	"investment-engine/repository"
)

type GoalPlannerService struct {
	cache        repository.CacheRepository
	riskFreeRate float64
}

// NewGoalPlannerService creates a GoalPlannerService. riskFreeRate is the
// annual risk-free rate (decimal) used by the Sharpe ratio.
func NewGoalPlannerService(cache repository.CacheRepository, riskFreeRate float64) *GoalPlannerService {
	return &GoalPlannerService{cache: cache, riskFreeRate: riskFreeRate}
}

// CalculateFinancialGoal projects a weighted four-asset portfolio year by
// year, optionally checks it against a target amount, and emits rule-based
// recommendations.
func (s *GoalPlannerService) CalculateFinancialGoal(
	input domain.FinancialGoalInput,
) (domain.FinancialGoalResult, error) {

	if input.GoalName == "" {
		return domain.FinancialGoalResult{}, errors.New("goal name is required")
	}
	if len(input.GoalName) > MaxGoalNameLength {
		return domain.FinancialGoalResult{}, fmt.Errorf("goal name exceeds %d characters", MaxGoalNameLength)
	}
	if input.TargetAmount < 0 {
		return domain.FinancialGoalResult{}, errors.New("target amount cannot be negative")
	}
	if input.InitialAmount < 0 {
		return domain.FinancialGoalResult{}, errors.New("initial amount cannot be negative")
	}
	if input.MonthlyAmount < 0 {
		return domain.FinancialGoalResult{}, errors.New("monthly amount cannot be negative")
	}
	if input.InvestmentPeriod <= 0 || input.InvestmentPeriod > MaxYears {
		return domain.FinancialGoalResult{}, fmt.Errorf("investment period must be within (0, %d]", MaxYears)
	}
	switch input.RiskTolerance {
	case domain.RiskLow, domain.RiskMedium, domain.RiskHigh, "":
	default:
		return domain.FinancialGoalResult{}, errors.New("risk tolerance must be low, medium or high")
	}
	if err := validateAllocations(input); err != nil {
		return domain.FinancialGoalResult{}, err
	}

	key := cacheKey("financial-goal", input)
	if cached, ok := cachedResult[domain.FinancialGoalResult](s.cache, key); ok {
		return cached, nil
	}

	expectedReturn, portfolioRisk := portfolioMetrics(input)

	projections := simulateGrowth(input.InitialAmount, input.MonthlyAmount, expectedReturn, input.InvestmentPeriod)
	final := projections[len(projections)-1]

	var goalAnalysis *domain.GoalAnalysis
	if input.TargetAmount > 0 {
		goalAnalysis = analyzeGoal(input.TargetAmount, final.PortfolioValue, expectedReturn, input.InvestmentPeriod)
	}

	recommendations := generateRecommendations(input, goalAnalysis)

	chartData := domain.ChartData{
		Years:            make([]int, 0, len(projections)),
		PortfolioValues:  make([]float64, 0, len(projections)),
		TotalInvestments: make([]float64, 0, len(projections)),
		Returns:          make([]float64, 0, len(projections)),
	}
	for _, p := range projections {
		chartData.Years = append(chartData.Years, p.Year)
		chartData.PortfolioValues = append(chartData.PortfolioValues, p.PortfolioValue)
		chartData.TotalInvestments = append(chartData.TotalInvestments, p.TotalInvestment)
		chartData.Returns = append(chartData.Returns, p.TotalReturn)
	}

	riskAdjustedReturn := expectedReturn - portfolioRisk

	var sharpeRatio *float64
	if portfolioRisk > 0 {
		sharpe := roundTo2Decimals((expectedReturn - s.riskFreeRate) / portfolioRisk)
		sharpeRatio = &sharpe
	}

	result := domain.FinancialGoalResult{
		Success:             true,
		GoalName:            input.GoalName,
		Projections:         projections,
		FinalAmount:         final.PortfolioValue,
		TotalInvestment:     final.TotalInvestment,
		TotalReturn:         final.TotalReturn,
		AverageAnnualReturn: roundTo2Decimals(final.ReturnRate / float64(input.InvestmentPeriod)),
		GoalAnalysis:        goalAnalysis,
		Recommendations:     recommendations,
		ChartData:           chartData,
		PortfolioRisk:       roundTo2Decimals(portfolioRisk * 100),
		RiskAdjustedReturn:  roundTo2Decimals(riskAdjustedReturn * 100),
		SharpeRatio:         sharpeRatio,
	}

	storeResult(s.cache, key, result)

	return result, nil
}

// validateAllocations enforces the sum-to-100 invariant before any
// computation happens.
func validateAllocations(input domain.FinancialGoalInput) error {
	for _, alloc := range []struct {
		name  string
		value float64
	}{
		{"stock_allocation", input.StockAllocation},
		{"bond_allocation", input.BondAllocation},
		{"etf_allocation", input.ETFAllocation},
		{"deposit_allocation", input.DepositAllocation},
	} {
		if alloc.value < 0 || alloc.value > 100 {
			return fmt.Errorf("%s must be within [0, 100]", alloc.name)
		}
	}

	total := input.StockAllocation + input.BondAllocation + input.ETFAllocation + input.DepositAllocation
	if math.Abs(total-100) > AllocationTolerance {
		return fmt.Errorf("allocations must sum to 100%%, got %.2f%%", total)
	}
	return nil
}

// portfolioMetrics returns the allocation-weighted expected return and
// risk (both decimals).
func portfolioMetrics(input domain.FinancialGoalInput) (float64, float64) {
	// Fixed summation order keeps results bit-for-bit reproducible.
	expectedReturn := input.StockAllocation/100*assetExpectedReturns["stock"] +
		input.BondAllocation/100*assetExpectedReturns["bond"] +
		input.ETFAllocation/100*assetExpectedReturns["etf"] +
		input.DepositAllocation/100*assetExpectedReturns["deposit"]

	portfolioRisk := input.StockAllocation/100*assetRisks["stock"] +
		input.BondAllocation/100*assetRisks["bond"] +
		input.ETFAllocation/100*assetRisks["etf"] +
		input.DepositAllocation/100*assetRisks["deposit"]

	return expectedReturn, portfolioRisk
}

// simulateGrowth compounds the portfolio one year at a time: the annual
// contribution lands first, then the year's return applies.
func simulateGrowth(initialAmount, monthlyAmount, expectedReturn float64, years int) []domain.YearlyProjection {
	projections := make([]domain.YearlyProjection, 0, years)
	currentValue := initialAmount
	totalInvested := initialAmount

	for year := 1; year <= years; year++ {
		annualInvestment := monthlyAmount * 12
		totalInvested += annualInvestment
		currentValue += annualInvestment

		currentValue *= 1 + expectedReturn
		totalReturn := currentValue - totalInvested

		var returnRate float64
		if totalInvested > 0 {
			returnRate = totalReturn / totalInvested * 100
		}

		projections = append(projections, domain.YearlyProjection{
			Year:            year,
			TotalInvestment: roundTo2Decimals(totalInvested),
			PortfolioValue:  roundTo2Decimals(currentValue),
			TotalReturn:     roundTo2Decimals(totalReturn),
			ReturnRate:      roundTo2Decimals(returnRate),
		})
	}

	return projections
}

// analyzeGoal checks the projected final value against the target. The
// success probability is a coarse heuristic, not a calibrated statistic,
// and the required monthly increase assumes the extra contribution earns
// the portfolio rate for the whole period.
func analyzeGoal(targetAmount, finalAmount, expectedReturn float64, years int) *domain.GoalAnalysis {
	canAchieve := finalAmount >= targetAmount
	shortfall := math.Max(0, targetAmount-finalAmount)

	var requiredIncrease float64
	if shortfall > 0 {
		requiredIncrease = shortfall / (float64(years) * 12 * (1 + expectedReturn))
	}

	probability := 0.3
	if canAchieve {
		probability = 0.8
	}

	return &domain.GoalAnalysis{
		CanAchieveGoal:          canAchieve,
		Probability:             probability,
		ShortfallAmount:         roundTo2Decimals(shortfall),
		RequiredMonthlyIncrease: roundTo2Decimals(requiredIncrease),
	}
}

// generateRecommendations applies a fixed, order-stable set of threshold
// rules. Rules are independent of each other.
func generateRecommendations(input domain.FinancialGoalInput, goalAnalysis *domain.GoalAnalysis) []domain.RecommendationItem {
	recommendations := []domain.RecommendationItem{}

	if goalAnalysis != nil && !goalAnalysis.CanAchieveGoal {
		recommendations = append(recommendations, domain.RecommendationItem{
			Type:        "goal_adjustment",
			Description: fmt.Sprintf("Increase the monthly contribution by $%.0f or extend the investment period", goalAnalysis.RequiredMonthlyIncrease),
			Impact:      "Improves the odds of reaching the goal",
			Priority:    1,
		})
	}

	if input.StockAllocation > 70 {
		recommendations = append(recommendations, domain.RecommendationItem{
			Type:        "risk_management",
			Description: "Stock allocation is high; shift part of it into defensive assets",
			Impact:      "Reduces portfolio volatility",
			Priority:    2,
		})
	}

	if input.DepositAllocation > 50 {
		recommendations = append(recommendations, domain.RecommendationItem{
			Type:        "return_optimization",
			Description: "Deposit allocation is high; add growth assets for long-term returns",
			Impact:      "Raises long-term return potential",
			Priority:    2,
		})
	}

	if input.InvestmentPeriod < 5 {
		recommendations = append(recommendations, domain.RecommendationItem{
			Type:        "time_horizon",
			Description: "Short investment horizon; prefer a more conservative allocation",
			Impact:      "Lowers short-term drawdown risk",
			Priority:    3,
		})
	}

	return recommendations
}
