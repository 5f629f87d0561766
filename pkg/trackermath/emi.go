// Package trackermath implements the pure calculations behind BudgetFlo's
// goal, loan and savings trackers: EMI amortization, progress percentages
// and contribution suggestions. Every function is a stateless function of
// its inputs and performs no I/O.
package trackermath

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidPrincipal is returned when the loan principal is not positive
	ErrInvalidPrincipal = errors.New("principal must be greater than zero")

	// ErrInvalidTenure is returned when the tenure is less than one month
	ErrInvalidTenure = errors.New("tenure must be at least one month")

	// ErrInvalidRate is returned when the annual interest rate is negative
	ErrInvalidRate = errors.New("interest rate must not be negative")
)

// ComputeEMI derives the fixed monthly installment for a reducing-balance
// loan. The annual rate is a percentage (10 means 10% p.a.). A zero rate
// falls back to a straight-line split of the principal. The result is
// rounded half-up to the cent.
//
// Out-of-range input is rejected rather than clamped.
func ComputeEMI(principal, annualRatePercent float64, tenureMonths int) (float64, error) {
	if principal <= 0 {
		return 0, ErrInvalidPrincipal
	}
	if tenureMonths < 1 {
		return 0, ErrInvalidTenure
	}
	if annualRatePercent < 0 {
		return 0, ErrInvalidRate
	}

	monthlyRate := annualRatePercent / 100 / 12
	if monthlyRate == 0 {
		return roundCents(principal / float64(tenureMonths)), nil
	}

	// emi = P * r * (1+r)^n / ((1+r)^n - 1)
	factor := math.Pow(1+monthlyRate, float64(tenureMonths))
	emi := principal * monthlyRate * factor / (factor - 1)

	return roundCents(emi), nil
}

// roundCents rounds half away from zero on the cent, which for the positive
// amounts handled here is round-half-up.
func roundCents(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
