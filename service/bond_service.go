package service

import (
	"errors"
	"fmt"
	"math"

	"investment-engine/domain"
	"investment-engine/repository"
)

type BondDepositService struct {
	cache repository.CacheRepository
}

// NewBondDepositService creates a BondDepositService backed by the given
// result cache.
func NewBondDepositService(cache repository.CacheRepository) *BondDepositService {
	return &BondDepositService{cache: cache}
}

// CalculateBondDeposit computes the nominal and inflation-adjusted outcome
// of a bond or fixed deposit, using compound or simple interest.
func (s *BondDepositService) CalculateBondDeposit(
	input domain.BondDepositInput,
) (domain.BondDepositResult, error) {

	if input.Principal <= 0 {
		return domain.BondDepositResult{}, errors.New("principal must be greater than 0")
	}
	if input.InterestRate < 0 {
		return domain.BondDepositResult{}, errors.New("interest rate cannot be negative")
	}
	if input.Years <= 0 || input.Years > MaxYears {
		return domain.BondDepositResult{}, fmt.Errorf("years must be within (0, %d]", MaxYears)
	}
	if input.InflationRate < 0 || input.InflationRate > MaxInflationRate {
		return domain.BondDepositResult{}, fmt.Errorf("inflation rate must be within [0, %.0f]", MaxInflationRate)
	}

	key := cacheKey("bond-deposit", input)
	if cached, ok := cachedResult[domain.BondDepositResult](s.cache, key); ok {
		return cached, nil
	}

	interestRate := input.InterestRate / 100
	inflationRate := input.InflationRate / 100
	years := float64(input.Years)

	var finalValue float64
	if input.IsCompound {
		finalValue = input.Principal * math.Pow(1+interestRate, years)
	} else {
		finalValue = input.Principal * (1 + interestRate*years)
	}

	// Deflate by the inflation path, then derive the real rate via the
	// Fisher equation.
	realValue := finalValue / math.Pow(1+inflationRate, years)
	realReturn := ((1+interestRate)/(1+inflationRate) - 1) * 100

	inflationImpact := finalValue - realValue
	totalInterest := finalValue - input.Principal

	if !isFinite(finalValue) || !isFinite(realValue) {
		return bondFailure("calculation produced a non-finite result"), nil
	}

	result := domain.BondDepositResult{
		Success:         true,
		FinalValue:      roundTo2Decimals(finalValue),
		RealValue:       roundTo2Decimals(realValue),
		NominalReturn:   roundTo2Decimals(input.InterestRate),
		RealReturn:      roundTo2Decimals(realReturn),
		InflationImpact: roundTo2Decimals(inflationImpact),
		TotalInterest:   roundTo2Decimals(totalInterest),
		InflationLoss:   roundTo2Decimals(inflationImpact),
	}

	storeResult(s.cache, key, result)

	return result, nil
}

// bondFailure keeps the response shape with zeroed figures.
func bondFailure(message string) domain.BondDepositResult {
	return domain.BondDepositResult{Message: message}
}
