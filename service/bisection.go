package service

import "math"

// NPVFunc evaluates the net present value of a cash-flow stream at a
// candidate annual rate (decimal). It must be monotonically decreasing in
// the rate over the bracket handed to SolveRateBisection.
type NPVFunc func(rate float64) float64

// SolveRateBisection approximates the rate that zeroes npv by bisecting
// [low, high]. It returns the midpoint rate as a percentage and whether
// the NPV converged below tolerance within the iteration budget; the
// midpoint is returned either way.
func SolveRateBisection(npv NPVFunc, low, high, tolerance float64, maxIterations int) (float64, bool) {
	mid := (low + high) / 2

	for i := 0; i < maxIterations; i++ {
		mid = (low + high) / 2
		value := npv(mid)

		if math.Abs(value) < tolerance {
			return mid * 100, true
		}
		if value > 0 {
			low = mid
		} else {
			high = mid
		}
	}

	return mid * 100, false
}
