package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"investment-engine/domain"
)

func TestCalculateStockSimulation_TinyVolatilityConverges(t *testing.T) {
	svc := NewStockSimulationService(4)

	result, err := svc.CalculateStockSimulation(context.Background(), domain.StockSimulationInput{
		InitialAmount:  10_000,
		ExpectedReturn: 8,
		Volatility:     0.0001,
		Years:          5,
		Simulations:    1000,
		Seed:           42,
	})

	require.NoError(t, err)
	require.True(t, result.Success)

	// With near-zero volatility every trial collapses onto 10000 * 1.08^5.
	assert.InDelta(t, 14_693, result.Mean, 2)
	assert.InDelta(t, result.Mean, result.Percentile5, 2)
	assert.InDelta(t, result.Mean, result.Percentile95, 2)
	assert.InDelta(t, 8.0, result.MeanReturn, 0.05)
	assert.InDelta(t, 100, result.ProbabilityPositive, 0.001)
}

func TestCalculateStockSimulation_ReproducibleForFixedSeed(t *testing.T) {
	first := NewStockSimulationService(4)
	second := NewStockSimulationService(4)

	input := domain.StockSimulationInput{
		InitialAmount:  10_000,
		MonthlyAmount:  1_000,
		ExpectedReturn: 8,
		Volatility:     15,
		Years:          10,
		Simulations:    2000,
		Seed:           123,
	}

	a, err := first.CalculateStockSimulation(context.Background(), input)
	require.NoError(t, err)
	b, err := second.CalculateStockSimulation(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestCalculateStockSimulation_MeanStabilizesWithTrialCount(t *testing.T) {
	svc := NewStockSimulationService(4)

	// Lump sum at 8%/15% over 10 years: the analytic mean terminal value
	// is 10000 * 1.08^10 and the per-trial standard deviation follows from
	// E[X^2] = (1.08^2 + 0.15^2)^10. Bands are five standard errors wide
	// and tighten as the trial count grows.
	const analyticMean = 21_589.25

	cases := []struct {
		simulations int
		band        float64
	}{
		{1_000, 1600},
		{10_000, 500},
		{100_000, 160},
	}

	for _, tc := range cases {
		result, err := svc.CalculateStockSimulation(context.Background(), domain.StockSimulationInput{
			InitialAmount:  10_000,
			ExpectedReturn: 8,
			Volatility:     15,
			Years:          10,
			Simulations:    tc.simulations,
			Seed:           42,
		})

		require.NoError(t, err)
		require.True(t, result.Success)
		assert.InDelta(t, analyticMean, result.Mean, tc.band, "%d trials", tc.simulations)
	}
}

func TestCalculateStockSimulation_PercentileOrdering(t *testing.T) {
	svc := NewStockSimulationService(0)

	result, err := svc.CalculateStockSimulation(context.Background(), domain.StockSimulationInput{
		InitialAmount:  50_000,
		ExpectedReturn: 10,
		Volatility:     20,
		Years:          15,
		Simulations:    5000,
		Seed:           7,
	})

	require.NoError(t, err)
	require.True(t, result.Success)

	assert.LessOrEqual(t, result.Percentile5, result.Mean)
	assert.LessOrEqual(t, result.Mean, result.Percentile95)
	assert.Equal(t, result.Percentile5, result.ValueAtRisk)
	assert.LessOrEqual(t, result.ExpectedShortfall, result.Percentile5)
	assert.Greater(t, result.VolatilityRealized, 0.0)
	assert.Equal(t, 5000, result.SimulationCount)
}

func TestCalculateStockSimulation_DefaultTrialCount(t *testing.T) {
	svc := NewStockSimulationService(2)

	result, err := svc.CalculateStockSimulation(context.Background(), domain.StockSimulationInput{
		InitialAmount:  10_000,
		ExpectedReturn: 8,
		Volatility:     15,
		Years:          5,
		Seed:           1,
	})

	require.NoError(t, err)
	assert.Equal(t, DefaultSimulations, result.SimulationCount)
}

func TestCalculateStockSimulation_TotalInvestment(t *testing.T) {
	svc := NewStockSimulationService(2)

	result, err := svc.CalculateStockSimulation(context.Background(), domain.StockSimulationInput{
		InitialAmount:  10_000,
		MonthlyAmount:  1_000,
		ExpectedReturn: 8,
		Volatility:     15,
		Years:          5,
		Simulations:    1000,
		Seed:           1,
	})

	require.NoError(t, err)
	assert.Equal(t, 15_000.0, result.TotalInvestment)
}

func TestCalculateStockSimulation_CancelledContext(t *testing.T) {
	svc := NewStockSimulationService(2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.CalculateStockSimulation(ctx, domain.StockSimulationInput{
		InitialAmount:  10_000,
		ExpectedReturn: 8,
		Volatility:     15,
		Years:          5,
		Simulations:    10_000,
		Seed:           1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateStockSimulation_Validation(t *testing.T) {
	svc := NewStockSimulationService(2)

	cases := []struct {
		name  string
		input domain.StockSimulationInput
	}{
		{"negative initial", domain.StockSimulationInput{InitialAmount: -1, ExpectedReturn: 8, Volatility: 15, Years: 5}},
		{"zero volatility", domain.StockSimulationInput{InitialAmount: 1000, ExpectedReturn: 8, Volatility: 0, Years: 5}},
		{"expected return too high", domain.StockSimulationInput{InitialAmount: 1000, ExpectedReturn: 150, Volatility: 15, Years: 5}},
		{"too few simulations", domain.StockSimulationInput{InitialAmount: 1000, ExpectedReturn: 8, Volatility: 15, Years: 5, Simulations: 500}},
		{"too many simulations", domain.StockSimulationInput{InitialAmount: 1000, ExpectedReturn: 8, Volatility: 15, Years: 5, Simulations: 200_000}},
		{"zero years", domain.StockSimulationInput{InitialAmount: 1000, ExpectedReturn: 8, Volatility: 15, Years: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CalculateStockSimulation(context.Background(), tc.input)
			assert.Error(t, err)
		})
	}
}
