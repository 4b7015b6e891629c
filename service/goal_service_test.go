package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"investment-engine/domain"
	"investment-engine/repository"
)

const testRiskFreeRate = 0.02

func newGoalService() *GoalPlannerService {
	return NewGoalPlannerService(repository.NewMockCache(), testRiskFreeRate)
}

func TestCalculateFinancialGoal_AllDepositPortfolio(t *testing.T) {
	svc := newGoalService()

	result, err := svc.CalculateFinancialGoal(domain.FinancialGoalInput{
		GoalName:          "emergency fund",
		MonthlyAmount:     100,
		InvestmentPeriod:  1,
		RiskTolerance:     domain.RiskLow,
		DepositAllocation: 100,
	})

	require.NoError(t, err)
	require.True(t, result.Success)

	// 1200 contributed, then one year at the 2% deposit rate.
	require.Len(t, result.Projections, 1)
	assert.InDelta(t, 1200, result.Projections[0].TotalInvestment, 0.001)
	assert.InDelta(t, 1224, result.Projections[0].PortfolioValue, 0.001)

	assert.InDelta(t, 1.0, result.PortfolioRisk, 0.001)
	assert.InDelta(t, 1.0, result.RiskAdjustedReturn, 0.001)

	require.NotNil(t, result.SharpeRatio)
	assert.InDelta(t, 0, *result.SharpeRatio, 0.001)
}

func TestCalculateFinancialGoal_AllStockPortfolio(t *testing.T) {
	svc := newGoalService()

	result, err := svc.CalculateFinancialGoal(domain.FinancialGoalInput{
		GoalName:         "retirement",
		InitialAmount:    10_000,
		InvestmentPeriod: 10,
		RiskTolerance:    domain.RiskHigh,
		StockAllocation:  100,
	})

	require.NoError(t, err)
	require.True(t, result.Success)

	// 10000 at the 12% stock rate for ten years.
	assert.InDelta(t, 31_058.48, result.FinalAmount, 0.01)
	assert.InDelta(t, 10_000, result.TotalInvestment, 0.001)
	assert.InDelta(t, 21_058.48, result.TotalReturn, 0.01)
	assert.InDelta(t, 21.06, result.AverageAnnualReturn, 0.005)

	assert.InDelta(t, 20, result.PortfolioRisk, 0.001)
	assert.InDelta(t, -8, result.RiskAdjustedReturn, 0.001)

	require.NotNil(t, result.SharpeRatio)
	assert.InDelta(t, 0.5, *result.SharpeRatio, 0.001)

	assert.Len(t, result.ChartData.Years, 10)
	assert.Len(t, result.ChartData.PortfolioValues, 10)
}

func TestCalculateFinancialGoal_UnreachableTarget(t *testing.T) {
	svc := newGoalService()

	result, err := svc.CalculateFinancialGoal(domain.FinancialGoalInput{
		GoalName:         "moonshot",
		TargetAmount:     1_000_000_000,
		MonthlyAmount:    100,
		InvestmentPeriod: 10,
		RiskTolerance:    domain.RiskMedium,
		StockAllocation:  50,
		BondAllocation:   50,
	})

	require.NoError(t, err)
	require.NotNil(t, result.GoalAnalysis)

	assert.False(t, result.GoalAnalysis.CanAchieveGoal)
	assert.Equal(t, 0.3, result.GoalAnalysis.Probability)
	assert.Greater(t, result.GoalAnalysis.ShortfallAmount, 0.0)
	assert.Greater(t, result.GoalAnalysis.RequiredMonthlyIncrease, 0.0)

	require.NotEmpty(t, result.Recommendations)
	assert.Equal(t, "goal_adjustment", result.Recommendations[0].Type)
	assert.Equal(t, 1, result.Recommendations[0].Priority)
}

func TestCalculateFinancialGoal_AchievableTarget(t *testing.T) {
	svc := newGoalService()

	result, err := svc.CalculateFinancialGoal(domain.FinancialGoalInput{
		GoalName:         "small goal",
		TargetAmount:     1000,
		InitialAmount:    10_000,
		InvestmentPeriod: 10,
		RiskTolerance:    domain.RiskMedium,
		BondAllocation:   100,
	})

	require.NoError(t, err)
	require.NotNil(t, result.GoalAnalysis)

	assert.True(t, result.GoalAnalysis.CanAchieveGoal)
	assert.Equal(t, 0.8, result.GoalAnalysis.Probability)
	assert.Equal(t, 0.0, result.GoalAnalysis.ShortfallAmount)
	assert.Equal(t, 0.0, result.GoalAnalysis.RequiredMonthlyIncrease)

	for _, rec := range result.Recommendations {
		assert.NotEqual(t, "goal_adjustment", rec.Type)
	}
}

func TestCalculateFinancialGoal_NoTargetSkipsAnalysis(t *testing.T) {
	svc := newGoalService()

	result, err := svc.CalculateFinancialGoal(domain.FinancialGoalInput{
		GoalName:         "open-ended savings",
		MonthlyAmount:    500,
		InvestmentPeriod: 20,
		RiskTolerance:    domain.RiskMedium,
		ETFAllocation:    100,
	})

	require.NoError(t, err)
	assert.Nil(t, result.GoalAnalysis)
	require.NotNil(t, result.SharpeRatio)
}

func TestCalculateFinancialGoal_ThresholdRecommendations(t *testing.T) {
	svc := newGoalService()

	t.Run("heavy stock allocation", func(t *testing.T) {
		result, err := svc.CalculateFinancialGoal(domain.FinancialGoalInput{
			GoalName:         "aggressive",
			MonthlyAmount:    100,
			InvestmentPeriod: 10,
			StockAllocation:  80,
			BondAllocation:   20,
		})
		require.NoError(t, err)
		assertHasRecommendation(t, result.Recommendations, "risk_management")
	})

	t.Run("heavy deposit allocation", func(t *testing.T) {
		result, err := svc.CalculateFinancialGoal(domain.FinancialGoalInput{
			GoalName:          "conservative",
			MonthlyAmount:     100,
			InvestmentPeriod:  10,
			StockAllocation:   40,
			DepositAllocation: 60,
		})
		require.NoError(t, err)
		assertHasRecommendation(t, result.Recommendations, "return_optimization")
	})

	t.Run("short horizon", func(t *testing.T) {
		result, err := svc.CalculateFinancialGoal(domain.FinancialGoalInput{
			GoalName:         "near-term",
			MonthlyAmount:    100,
			InvestmentPeriod: 3,
			BondAllocation:   100,
		})
		require.NoError(t, err)
		assertHasRecommendation(t, result.Recommendations, "time_horizon")
	})
}

func assertHasRecommendation(t *testing.T, recs []domain.RecommendationItem, recType string) {
	t.Helper()
	for _, rec := range recs {
		if rec.Type == recType {
			return
		}
	}
	t.Errorf("expected a %q recommendation, got %v", recType, recs)
}

func TestCalculateFinancialGoal_Validation(t *testing.T) {
	svc := newGoalService()

	valid := domain.FinancialGoalInput{
		GoalName:         "valid",
		MonthlyAmount:    100,
		InvestmentPeriod: 10,
		RiskTolerance:    domain.RiskMedium,
		StockAllocation:  60,
		BondAllocation:   40,
	}

	cases := []struct {
		name   string
		mutate func(*domain.FinancialGoalInput)
	}{
		{"empty name", func(in *domain.FinancialGoalInput) { in.GoalName = "" }},
		{"name too long", func(in *domain.FinancialGoalInput) { in.GoalName = strings.Repeat("x", 101) }},
		{"negative target", func(in *domain.FinancialGoalInput) { in.TargetAmount = -1 }},
		{"negative monthly", func(in *domain.FinancialGoalInput) { in.MonthlyAmount = -1 }},
		{"zero period", func(in *domain.FinancialGoalInput) { in.InvestmentPeriod = 0 }},
		{"unknown risk tolerance", func(in *domain.FinancialGoalInput) { in.RiskTolerance = "extreme" }},
		{"allocation above 100", func(in *domain.FinancialGoalInput) { in.StockAllocation = 120; in.BondAllocation = -20 }},
		{"allocations sum to 105", func(in *domain.FinancialGoalInput) { in.BondAllocation = 45 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := valid
			tc.mutate(&input)
			_, err := svc.CalculateFinancialGoal(input)
			assert.Error(t, err)
		})
	}
}

func TestCalculateFinancialGoal_CachesResult(t *testing.T) {
	cache := repository.NewMockCache()
	svc := NewGoalPlannerService(cache, testRiskFreeRate)

	input := domain.FinancialGoalInput{
		GoalName:         "cached",
		MonthlyAmount:    100,
		InvestmentPeriod: 5,
		RiskTolerance:    domain.RiskMedium,
		ETFAllocation:    100,
	}

	first, err := svc.CalculateFinancialGoal(input)
	require.NoError(t, err)
	require.Equal(t, 1, cache.Len())

	second, err := svc.CalculateFinancialGoal(input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.Len())
}
