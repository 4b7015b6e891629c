package service

import (
	"errors"
	"fmt"
	"math"

	"investment-engine/domain"
	"investment-engine/repository"
)

type ETFInvestmentService struct {
	cache repository.CacheRepository
}

// NewETFInvestmentService creates an ETFInvestmentService backed by the
// given result cache.
func NewETFInvestmentService(cache repository.CacheRepository) *ETFInvestmentService {
	return &ETFInvestmentService{cache: cache}
}

// CalculateETFInvestment simulates a dollar-cost-averaging ETF plan month
// by month from a normalized unit price of 100, reinvesting every dividend
// at the post-growth price, and decomposes the profit into dividend income
// and capital gain.
func (s *ETFInvestmentService) CalculateETFInvestment(
	input domain.ETFInvestmentInput,
) (domain.ETFInvestmentResult, error) {

	if input.InitialAmount < 0 {
		return domain.ETFInvestmentResult{}, errors.New("initial amount cannot be negative")
	}
	if input.MonthlyAmount < 0 {
		return domain.ETFInvestmentResult{}, errors.New("monthly amount cannot be negative")
	}
	if input.DividendYield < 0 || input.DividendYield > MaxDividendYield {
		return domain.ETFInvestmentResult{}, fmt.Errorf("dividend yield must be within [0, %.0f]", MaxDividendYield)
	}
	if input.PriceGrowth < MinPriceGrowth || input.PriceGrowth > MaxPriceGrowth {
		return domain.ETFInvestmentResult{}, fmt.Errorf("price growth must be within [%.0f, %.0f]", MinPriceGrowth, MaxPriceGrowth)
	}
	if input.Years <= 0 || input.Years > MaxYears {
		return domain.ETFInvestmentResult{}, fmt.Errorf("years must be within (0, %d]", MaxYears)
	}

	key := cacheKey("etf-investment", input)
	if cached, ok := cachedResult[domain.ETFInvestmentResult](s.cache, key); ok {
		return cached, nil
	}

	totalMonths := input.Years * 12
	shares, price, totalDividendIncome := accumulateETF(input, totalMonths)

	finalValue := shares * price
	totalInvestment := input.InitialAmount + input.MonthlyAmount*float64(totalMonths)
	profit := finalValue - totalInvestment
	capitalGain := finalValue - totalInvestment - totalDividendIncome

	if !isFinite(finalValue) {
		return etfFailure("calculation produced a non-finite result"), nil
	}

	var annualizedReturn float64
	if totalInvestment > 0 {
		annualizedReturn = (math.Pow(finalValue/totalInvestment, 1/float64(input.Years)) - 1) * 100
	}

	irr := annualizedReturn
	if totalInvestment > 0 {
		npv := func(rate float64) float64 {
			return -totalInvestment + finalValue/math.Pow(1+rate, float64(input.Years))
		}
		if solved, ok := SolveRateBisection(npv, IRRLowerBound, IRRUpperBound, IRRTolerance, IRRMaxIterations); ok {
			irr = solved
		}
	}

	var roi float64
	if totalInvestment > 0 {
		roi = profit / totalInvestment * 100
	}

	var dividendRatio, capitalGainRatio float64
	if profit > 0 {
		dividendRatio = totalDividendIncome / profit * 100
		capitalGainRatio = capitalGain / profit * 100
	}

	result := domain.ETFInvestmentResult{
		Success:          true,
		FinalValue:       roundTo2Decimals(finalValue),
		TotalInvestment:  roundTo2Decimals(totalInvestment),
		Profit:           roundTo2Decimals(profit),
		ROI:              roundTo2Decimals(roi),
		IRR:              roundTo2Decimals(irr),
		AnnualizedReturn: roundTo2Decimals(annualizedReturn),
		DividendIncome:   roundTo2Decimals(totalDividendIncome),
		CapitalGain:      roundTo2Decimals(capitalGain),
		DividendRatio:    roundTo2Decimals(dividendRatio),
		CapitalGainRatio: roundTo2Decimals(capitalGainRatio),
	}

	storeResult(s.cache, key, result)

	return result, nil
}

// accumulateETF advances the accumulation loop by the given number of
// months and returns the position it reaches. Shares only ever grow:
// dividends and contributions buy, nothing sells.
func accumulateETF(input domain.ETFInvestmentInput, months int) (shares, price, totalDividendIncome float64) {
	monthlyDividendRate := input.DividendYield / 100 / 12
	monthlyGrowthRate := input.PriceGrowth / 100 / 12

	price = ETFBasePrice
	if input.InitialAmount > 0 {
		shares = input.InitialAmount / price
	}

	for month := 0; month < months; month++ {
		// Price moves first; dividends and contributions buy at the
		// post-growth price.
		price *= 1 + monthlyGrowthRate

		dividend := shares * price * monthlyDividendRate
		totalDividendIncome += dividend
		if dividend > 0 {
			shares += dividend / price
		}

		if input.MonthlyAmount > 0 {
			shares += input.MonthlyAmount / price
		}
	}

	return shares, price, totalDividendIncome
}

func etfFailure(message string) domain.ETFInvestmentResult {
	return domain.ETFInvestmentResult{Message: message}
}
