package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"
	"sort"
	"sync"
	"time"

	"investment-engine/domain"
)

type StockSimulationService struct {
	workers int
}

// NewStockSimulationService creates a Monte Carlo simulator fanning trials
// out over the given number of worker goroutines. workers<=0 means one per
// CPU. Results are bit-for-bit reproducible for a fixed (seed, workers)
// pair.
func NewStockSimulationService(workers int) *StockSimulationService {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &StockSimulationService{workers: workers}
}

// CalculateStockSimulation runs independent random-walk trials of an
// annually compounded stock position and derives percentile and risk
// statistics from the empirical distribution of terminal values.
func (s *StockSimulationService) CalculateStockSimulation(
	ctx context.Context,
	input domain.StockSimulationInput,
) (domain.StockSimulationResult, error) {

	if input.InitialAmount < 0 {
		return domain.StockSimulationResult{}, errors.New("initial amount cannot be negative")
	}
	if input.MonthlyAmount < 0 {
		return domain.StockSimulationResult{}, errors.New("annual contribution cannot be negative")
	}
	if input.ExpectedReturn < MinExpectedReturn || input.ExpectedReturn > MaxExpectedReturn {
		return domain.StockSimulationResult{}, fmt.Errorf("expected return must be within [%.0f, %.0f]", MinExpectedReturn, MaxExpectedReturn)
	}
	if input.Volatility <= 0 || input.Volatility > MaxVolatility {
		return domain.StockSimulationResult{}, fmt.Errorf("volatility must be within (0, %.0f]", MaxVolatility)
	}
	if input.Years <= 0 || input.Years > MaxYears {
		return domain.StockSimulationResult{}, fmt.Errorf("years must be within (0, %d]", MaxYears)
	}

	simulations := input.Simulations
	if simulations == 0 {
		simulations = DefaultSimulations
	}
	if simulations < MinSimulations || simulations > MaxSimulations {
		return domain.StockSimulationResult{}, fmt.Errorf("simulations must be within [%d, %d]", MinSimulations, MaxSimulations)
	}

	seed := uint64(input.Seed)
	if input.Seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	finalValues, err := s.runTrials(ctx, input, simulations, seed)
	if err != nil {
		return domain.StockSimulationResult{}, err
	}

	totalInvestment := input.InitialAmount + input.MonthlyAmount*float64(input.Years)

	sort.Float64s(finalValues)

	mean := 0.0
	for _, v := range finalValues {
		mean += v
	}
	mean /= float64(simulations)

	percentile5 := percentile(finalValues, 5)
	percentile95 := percentile(finalValues, 95)

	profitable := 0
	for _, v := range finalValues {
		if v > totalInvestment {
			profitable++
		}
	}
	probabilityPositive := float64(profitable) / float64(simulations) * 100

	// Expected shortfall averages every outcome at or below the 5th
	// percentile.
	tailSum, tailCount := 0.0, 0
	for _, v := range finalValues {
		if v > percentile5 {
			break
		}
		tailSum += v
		tailCount++
	}
	expectedShortfall := 0.0
	if tailCount > 0 {
		expectedShortfall = tailSum / float64(tailCount)
	}

	returns := make([]float64, simulations)
	for i, v := range finalValues {
		returns[i] = v/totalInvestment - 1
	}
	volatilityRealized := populationStdDev(returns) * 100

	years := float64(input.Years)
	meanReturn := (math.Pow(mean/totalInvestment, 1/years) - 1) * 100
	worstCase := (math.Pow(percentile5/totalInvestment, 1/years) - 1) * 100
	bestCase := (math.Pow(percentile95/totalInvestment, 1/years) - 1) * 100

	for _, v := range []float64{mean, percentile5, percentile95, meanReturn, worstCase, bestCase, volatilityRealized} {
		if !isFinite(v) {
			return stockFailure("simulation produced a non-finite result"), nil
		}
	}

	return domain.StockSimulationResult{
		Success:             true,
		Mean:                roundTo0Decimals(mean),
		Percentile5:         roundTo0Decimals(percentile5),
		Percentile95:        roundTo0Decimals(percentile95),
		TotalInvestment:     totalInvestment,
		MeanReturn:          roundTo2Decimals(meanReturn),
		WorstCase:           roundTo2Decimals(worstCase),
		BestCase:            roundTo2Decimals(bestCase),
		ProbabilityPositive: roundTo2Decimals(probabilityPositive),
		ValueAtRisk:         roundTo0Decimals(percentile5),
		ExpectedShortfall:   roundTo0Decimals(expectedShortfall),
		SimulationCount:     simulations,
		VolatilityRealized:  roundTo2Decimals(volatilityRealized),
	}, nil
}

// runTrials splits the trials into one chunk per worker. Every worker owns
// a disjoint segment of the result slice and its own PCG stream derived
// from the base seed and chunk index, so scheduling order cannot change
// the outcome.
func (s *StockSimulationService) runTrials(
	ctx context.Context,
	input domain.StockSimulationInput,
	simulations int,
	seed uint64,
) ([]float64, error) {

	expectedReturn := input.ExpectedReturn / 100
	volatility := input.Volatility / 100

	workers := s.workers
	if workers > simulations {
		workers = simulations
	}

	finalValues := make([]float64, simulations)
	chunkSize := (simulations + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > simulations {
			end = simulations
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(chunk int, segment []float64) {
			defer wg.Done()

			rng := rand.New(rand.NewPCG(seed, uint64(chunk)+1))
			for i := range segment {
				if i%1024 == 0 && ctx.Err() != nil {
					return
				}

				value := input.InitialAmount
				for year := 0; year < input.Years; year++ {
					value += input.MonthlyAmount
					draw := rng.NormFloat64()*volatility + expectedReturn
					value *= 1 + draw
				}
				segment[i] = value
			}
		}(w, finalValues[start:end])
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return finalValues, nil
}

func stockFailure(message string) domain.StockSimulationResult {
	return domain.StockSimulationResult{Message: message}
}
