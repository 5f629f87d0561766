package trackermath

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScheduleEntry is one period of an amortization schedule.
type ScheduleEntry struct {
	Period           int             `json:"period"`
	DueDate          time.Time       `json:"dueDate"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	Total            decimal.Decimal `json:"total"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}

// AmortizationSchedule expands a loan into its per-month payment rows. The
// first payment falls due one month after startDate. Monetary arithmetic is
// done in decimal so the running balance lands on exactly zero; the final
// period absorbs accumulated rounding.
//
// Returns nil for out-of-range input, mirroring ComputeEMI's preconditions.
func AmortizationSchedule(principal, annualRatePercent float64, tenureMonths int, startDate time.Time) []ScheduleEntry {
	emi, err := ComputeEMI(principal, annualRatePercent, tenureMonths)
	if err != nil {
		return nil
	}

	payment := decimal.NewFromFloat(emi)
	remaining := decimal.NewFromFloat(principal)
	monthlyRate := decimal.NewFromFloat(annualRatePercent / 100 / 12)

	schedule := make([]ScheduleEntry, 0, tenureMonths)
	for period := 1; period <= tenureMonths; period++ {
		interest := remaining.Mul(monthlyRate).Round(2)
		principalPart := payment.Sub(interest)

		// Final period pays off whatever is left.
		if period == tenureMonths {
			principalPart = remaining
			payment = principalPart.Add(interest)
		}

		remaining = remaining.Sub(principalPart)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}

		schedule = append(schedule, ScheduleEntry{
			Period:           period,
			DueDate:          startDate.AddDate(0, period, 0),
			Principal:        principalPart,
			Interest:         interest,
			Total:            principalPart.Add(interest),
			RemainingBalance: remaining,
		})
	}

	return schedule
}
