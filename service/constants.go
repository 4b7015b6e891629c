package service

const (
	MaxYears     = 50 // máximo horizonte de simulación
	MaxLoanYears = 40

	MaxInflationRate = 20.0
	MaxDividendYield = 20.0
	MaxLoanRate      = 20.0
	MaxPriceGrowth   = 50.0
	MinPriceGrowth   = -50.0

	MinAppreciationRate = -50.0
	MaxAppreciationRate = 200.0

	MinExpectedReturn = -50.0
	MaxExpectedReturn = 100.0
	MaxVolatility     = 100.0

	DefaultSimulations = 10_000
	MinSimulations     = 1_000
	MaxSimulations     = 100_000

	MaxGoalNameLength = 100

	// Tolerance for the allocation-sum invariant (percent points).
	AllocationTolerance = 0.01

	// Bisection bracket and termination for the IRR approximation.
	IRRLowerBound    = -0.5
	IRRUpperBound    = 2.0
	IRRTolerance     = 1e-4
	IRRMaxIterations = 100

	// Reference unit price the ETF accumulation starts from.
	ETFBasePrice = 100.0
)

// Fixed per-asset-class expected annual returns (decimals).
var assetExpectedReturns = map[string]float64{
	"stock":   0.12,
	"bond":    0.04,
	"etf":     0.08,
	"deposit": 0.02,
}

// Fixed per-asset-class annual risk figures (decimals).
var assetRisks = map[string]float64{
	"stock":   0.20,
	"bond":    0.05,
	"etf":     0.15,
	"deposit": 0.01,
}
