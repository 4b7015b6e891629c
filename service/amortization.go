package service

import "math"

// MonthlyPayment returns the fixed payment of a level-payment loan using
// the standard annuity formula. A zero rate degenerates to straight
// division of the principal.
func MonthlyPayment(principal, monthlyRate float64, totalMonths int) float64 {
	if totalMonths <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		return principal / float64(totalMonths)
	}

	growth := math.Pow(1+monthlyRate, float64(totalMonths))
	return principal * monthlyRate * growth / (growth - 1)
}

// RemainingPrincipal returns the outstanding balance of a level-payment
// loan after paidMonths of its totalMonths term, via the closed-form
// balance formula. With a zero rate the principal amortizes linearly.
func RemainingPrincipal(principal, monthlyRate float64, totalMonths, paidMonths int) float64 {
	if totalMonths <= 0 || paidMonths >= totalMonths {
		return 0
	}
	if paidMonths < 0 {
		paidMonths = 0
	}
	if monthlyRate == 0 {
		return principal * float64(totalMonths-paidMonths) / float64(totalMonths)
	}

	growthN := math.Pow(1+monthlyRate, float64(totalMonths))
	growthK := math.Pow(1+monthlyRate, float64(paidMonths))
	return principal * (growthN - growthK) / (growthN - 1)
}
