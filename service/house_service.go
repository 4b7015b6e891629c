package service

import (
	"errors"
	"fmt"
	"math"

	"investment-engine/domain"
	"investment-engine/repository"
)

type HouseInvestmentService struct {
	cache repository.CacheRepository
}

// NewHouseInvestmentService creates a HouseInvestmentService backed by the
// given result cache.
func NewHouseInvestmentService(cache repository.CacheRepository) *HouseInvestmentService {
	return &HouseInvestmentService{cache: cache}
}

// CalculateHouseInvestment analyzes a leveraged house purchase under one of
// two scenarios: selling after SimulationYears (A) or holding until the
// loan is fully repaid (B).
func (s *HouseInvestmentService) CalculateHouseInvestment(
	input domain.HouseInvestmentInput,
) (domain.HouseInvestmentResult, error) {

	if input.HousePrice <= 0 {
		return domain.HouseInvestmentResult{}, errors.New("house price must be greater than 0")
	}
	if input.DownPayment <= 0 {
		return domain.HouseInvestmentResult{}, errors.New("down payment must be greater than 0")
	}
	if input.DownPayment >= input.HousePrice {
		return domain.HouseInvestmentResult{}, errors.New("down payment must be less than the house price")
	}
	if input.LoanRate < 0 || input.LoanRate > MaxLoanRate {
		return domain.HouseInvestmentResult{}, fmt.Errorf("loan rate must be within [0, %.0f]", MaxLoanRate)
	}
	if input.LoanYears <= 0 || input.LoanYears > MaxLoanYears {
		return domain.HouseInvestmentResult{}, fmt.Errorf("loan years must be within (0, %d]", MaxLoanYears)
	}
	if err := validateAppreciation("appreciation_rate_a", input.AppreciationRateA); err != nil {
		return domain.HouseInvestmentResult{}, err
	}
	if err := validateAppreciation("appreciation_rate_b", input.AppreciationRateB); err != nil {
		return domain.HouseInvestmentResult{}, err
	}
	if input.AnnualCost < 0 {
		return domain.HouseInvestmentResult{}, errors.New("annual holding cost cannot be negative")
	}
	if input.SimulationYears <= 0 || input.SimulationYears > MaxYears {
		return domain.HouseInvestmentResult{}, fmt.Errorf("simulation years must be within (0, %d]", MaxYears)
	}
	if input.Scenario != domain.ScenarioEarlySale && input.Scenario != domain.ScenarioHoldToMaturity {
		return domain.HouseInvestmentResult{}, errors.New("scenario must be A or B")
	}

	key := cacheKey("house-investment", input)
	if cached, ok := cachedResult[domain.HouseInvestmentResult](s.cache, key); ok {
		return cached, nil
	}

	loanAmount := input.HousePrice - input.DownPayment
	monthlyRate := input.LoanRate / 100 / 12
	totalMonths := input.LoanYears * 12
	monthlyPayment := MonthlyPayment(loanAmount, monthlyRate, totalMonths)

	var (
		annualReturn        float64
		currentValue        float64
		totalLoanPayments   float64
		interestPaid        float64
		totalHoldingCost    float64
		actualCashOutflow   float64
		actualSaleIncome    float64
		remainingPrincipal  float64
		scenarioDescription string
	)

	if input.Scenario == domain.ScenarioEarlySale {
		totalAppreciation := input.AppreciationRateA / 100
		annualReturn = (math.Pow(1+totalAppreciation, 1/float64(input.SimulationYears)) - 1) * 100
		currentValue = input.HousePrice * (1 + totalAppreciation)

		// Payments stop at loan maturity even when the simulated holding
		// period outruns the term.
		monthsInSimulation := input.SimulationYears * 12
		if monthsInSimulation > totalMonths {
			monthsInSimulation = totalMonths
		}

		totalLoanPayments = monthlyPayment * float64(monthsInSimulation)
		remainingPrincipal = RemainingPrincipal(loanAmount, monthlyRate, totalMonths, monthsInSimulation)

		principalPaid := loanAmount - remainingPrincipal
		interestPaid = totalLoanPayments - principalPaid

		totalHoldingCost = input.AnnualCost * float64(input.SimulationYears)
		actualCashOutflow = input.DownPayment + totalLoanPayments + totalHoldingCost
		actualSaleIncome = currentValue - remainingPrincipal

		scenarioDescription = fmt.Sprintf("Scenario A: sell after %d years", input.SimulationYears)
	} else {
		totalAppreciation := input.AppreciationRateB / 100
		annualReturn = (math.Pow(1+totalAppreciation, 1/float64(input.LoanYears)) - 1) * 100
		currentValue = input.HousePrice * (1 + totalAppreciation)

		totalLoanPayments = monthlyPayment * float64(totalMonths)
		interestPaid = totalLoanPayments - loanAmount

		totalHoldingCost = input.AnnualCost * float64(input.LoanYears)
		actualCashOutflow = input.DownPayment + totalLoanPayments + totalHoldingCost

		// Debt fully retired at maturity.
		remainingPrincipal = 0
		actualSaleIncome = currentValue

		scenarioDescription = fmt.Sprintf("Scenario B: hold until the loan is repaid (%d years)", input.LoanYears)
	}

	profit := actualSaleIncome - actualCashOutflow

	var roi float64
	if actualCashOutflow > 0 {
		roi = profit / actualCashOutflow * 100
	}

	downPaymentRatio := input.DownPayment / input.HousePrice * 100
	leverageRatio := input.HousePrice / input.DownPayment

	if !isFinite(profit) || !isFinite(roi) || !isFinite(annualReturn) {
		return houseFailure("calculation produced a non-finite result"), nil
	}

	result := domain.HouseInvestmentResult{
		Success:            true,
		Scenario:           scenarioDescription,
		ActualCashOutflow:  roundTo0Decimals(actualCashOutflow),
		ActualSaleIncome:   roundTo0Decimals(actualSaleIncome),
		CurrentValue:       roundTo0Decimals(currentValue),
		Profit:             roundTo0Decimals(profit),
		ROI:                roundTo2Decimals(roi),
		AnnualReturn:       roundTo2Decimals(annualReturn),
		MonthlyPayment:     roundTo0Decimals(monthlyPayment),
		LoanYears:          input.LoanYears,
		InterestPaid:       roundTo0Decimals(interestPaid),
		TotalLoanPayments:  roundTo0Decimals(totalLoanPayments),
		RemainingPrincipal: roundTo0Decimals(remainingPrincipal),
		HoldingCost:        roundTo0Decimals(totalHoldingCost),
		LoanAmount:         roundTo0Decimals(loanAmount),
		DownPaymentRatio:   roundTo2Decimals(downPaymentRatio),
		LeverageRatio:      roundTo2Decimals(leverageRatio),
	}

	storeResult(s.cache, key, result)

	return result, nil
}

func validateAppreciation(name string, rate float64) error {
	if rate < MinAppreciationRate || rate > MaxAppreciationRate {
		return fmt.Errorf("%s must be within [%.0f, %.0f]", name, MinAppreciationRate, MaxAppreciationRate)
	}
	return nil
}

func houseFailure(message string) domain.HouseInvestmentResult {
	return domain.HouseInvestmentResult{Message: message}
}
