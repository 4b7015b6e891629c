package service

import (
	"context"
	"log/slog"

	"investment-engine/domain"
)

// CompareService aggregates the headline figures of the bond, ETF and
// stock calculators for side-by-side comparison.
type CompareService struct {
	bond  *BondDepositService
	etf   *ETFInvestmentService
	stock *StockSimulationService
}

func NewCompareService(
	bond *BondDepositService,
	etf *ETFInvestmentService,
	stock *StockSimulationService,
) *CompareService {
	return &CompareService{bond: bond, etf: etf, stock: stock}
}

// BatchCompare runs the three calculators on independently supplied
// parameter sets. A calculator that rejects its parameters is skipped
// rather than failing the whole comparison.
func (s *CompareService) BatchCompare(
	ctx context.Context,
	input domain.BatchCompareInput,
) (domain.BatchCompareResult, error) {

	results := make(map[string]domain.ComparisonEntry)

	bondResult, err := s.bond.CalculateBondDeposit(input.Bond)
	if err != nil {
		slog.Warn("batch compare: bond calculation skipped", "error", err)
	} else if bondResult.Success {
		results["bond"] = domain.ComparisonEntry{
			Type:         "Bond / fixed deposit",
			FinalValue:   bondResult.FinalValue,
			TotalReturn:  roundTo2Decimals(bondResult.FinalValue - input.Bond.Principal),
			AnnualReturn: bondResult.NominalReturn,
			RiskLevel:    "low",
		}
	}

	etfResult, err := s.etf.CalculateETFInvestment(input.ETF)
	if err != nil {
		slog.Warn("batch compare: etf calculation skipped", "error", err)
	} else if etfResult.Success {
		results["etf"] = domain.ComparisonEntry{
			Type:         "ETF accumulation plan",
			FinalValue:   etfResult.FinalValue,
			TotalReturn:  etfResult.Profit,
			AnnualReturn: etfResult.AnnualizedReturn,
			RiskLevel:    "medium",
		}
	}

	stockResult, err := s.stock.CalculateStockSimulation(ctx, input.Stock)
	if err != nil {
		slog.Warn("batch compare: stock simulation skipped", "error", err)
	} else if stockResult.Success {
		results["stock"] = domain.ComparisonEntry{
			Type:         "Stock investment",
			FinalValue:   stockResult.Mean,
			TotalReturn:  roundTo2Decimals(stockResult.Mean - stockResult.TotalInvestment),
			AnnualReturn: stockResult.MeanReturn,
			RiskLevel:    "high",
			WorstCase:    stockResult.Percentile5,
			BestCase:     stockResult.Percentile95,
		}
	}

	return domain.BatchCompareResult{
		Success:           true,
		ComparisonResults: results,
		Summary: domain.CompareSummary{
			TotalScenarios: len(results),
			Recommendation: "Pick the mix that matches your risk tolerance",
		},
	}, nil
}
