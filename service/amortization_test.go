package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyPayment(t *testing.T) {
	// 300k at 6% annual over 30 years is the textbook annuity case.
	payment := MonthlyPayment(300_000, 0.06/12, 360)
	assert.InDelta(t, 1798.65, payment, 0.01)
}

func TestMonthlyPayment_ZeroRate(t *testing.T) {
	assert.Equal(t, 100.0, MonthlyPayment(1200, 0, 12))
}

func TestMonthlyPayment_NoTerm(t *testing.T) {
	assert.Equal(t, 0.0, MonthlyPayment(1200, 0.005, 0))
}

func TestRemainingPrincipal_Boundaries(t *testing.T) {
	assert.InDelta(t, 7_000_000, RemainingPrincipal(7_000_000, 0.02/12, 240, 0), 1e-6)
	assert.Equal(t, 0.0, RemainingPrincipal(7_000_000, 0.02/12, 240, 240))
	assert.Equal(t, 0.0, RemainingPrincipal(7_000_000, 0.02/12, 240, 300))
}

func TestRemainingPrincipal_ZeroRateAmortizesLinearly(t *testing.T) {
	assert.Equal(t, 900.0, RemainingPrincipal(1200, 0, 12, 3))
}

func TestRemainingPrincipal_StrictlyDecreasing(t *testing.T) {
	previous := RemainingPrincipal(7_000_000, 0.02/12, 240, 0)
	for paid := 12; paid <= 240; paid += 12 {
		current := RemainingPrincipal(7_000_000, 0.02/12, 240, paid)
		assert.Less(t, current, previous, "balance after %d months", paid)
		previous = current
	}
	assert.Equal(t, 0.0, previous)
}
