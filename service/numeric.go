package service

import "math"

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// roundTo0Decimals rounds to a whole currency amount.
func roundTo0Decimals(value float64) float64 {
	return math.Round(value)
}

func isFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// percentile computes the p-th percentile of an ascending-sorted slice
// using linear interpolation between order statistics (numpy convention).
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	idx := p / 100 * float64(n-1)
	lower := int(math.Floor(idx))
	if lower >= n-1 {
		return sorted[n-1]
	}
	frac := idx - float64(lower)
	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}

// populationStdDev is the ddof=0 standard deviation.
func populationStdDev(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	sq := 0.0
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(n))
}
