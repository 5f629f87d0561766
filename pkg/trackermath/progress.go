package trackermath

import (
	"math"
	"time"
)

// Status describes where a tracker stands relative to its target.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusOverdue    Status = "overdue"
)

// GoalSnapshot is the derived view of a goal at a point in time.
type GoalSnapshot struct {
	Percent       float64 `json:"percent"`
	Remaining     float64 `json:"remaining"`
	DaysRemaining int     `json:"daysRemaining"`
	Status        Status  `json:"status"`
}

// LoanSnapshot is the derived view of a loan tracker.
type LoanSnapshot struct {
	Percent          float64 `json:"percent"`
	MonthsRemaining  int     `json:"monthsRemaining"`
	RemainingBalance float64 `json:"remainingBalance"`
	Status           Status  `json:"status"`
}

// SavingsSnapshot is the derived view of a savings tracker.
type SavingsSnapshot struct {
	Percent   float64 `json:"percent"`
	Remaining float64 `json:"remaining"`
}

// GoalProgress derives percent-complete, remaining amount, days remaining
// and status for a goal. A zero or negative target yields 0%, never NaN.
// DaysRemaining is negative when the target date has passed.
func GoalProgress(targetAmount, currentAmount float64, targetDate, today time.Time) GoalSnapshot {
	snap := GoalSnapshot{
		DaysRemaining: daysBetween(today, targetDate),
		Status:        StatusInProgress,
	}

	if targetAmount > 0 {
		snap.Percent = currentAmount / targetAmount * 100
	}

	remaining := targetAmount - currentAmount
	if remaining < 0 {
		remaining = 0
	}
	snap.Remaining = roundCents(remaining)

	switch {
	case targetAmount > 0 && currentAmount >= targetAmount:
		snap.Status = StatusCompleted
	case snap.DaysRemaining < 0:
		snap.Status = StatusOverdue
	}

	return snap
}

// LoanProgress derives completion percentage and months remaining for a loan
// tracker. The remaining balance is a stored field maintained by the backend
// on each payment; it is echoed here, not recomputed from the EMI formula.
func LoanProgress(tenureMonths, paidInstallments int, remainingBalance float64) LoanSnapshot {
	snap := LoanSnapshot{
		MonthsRemaining:  tenureMonths - paidInstallments,
		RemainingBalance: remainingBalance,
		Status:           StatusInProgress,
	}

	if tenureMonths > 0 {
		snap.Percent = float64(paidInstallments) / float64(tenureMonths) * 100
	}

	if tenureMonths > 0 && paidInstallments >= tenureMonths {
		snap.Status = StatusCompleted
	}

	return snap
}

// SavingsProgress derives percent-complete for a savings tracker. Both the
// balance and the overall target are optional on the wire, so nil is treated
// as absent and yields 0%.
func SavingsProgress(currentBalance, overallTarget *float64) SavingsSnapshot {
	var snap SavingsSnapshot

	balance := 0.0
	if currentBalance != nil {
		balance = *currentBalance
	}

	if overallTarget == nil || *overallTarget <= 0 {
		return snap
	}

	snap.Percent = balance / *overallTarget * 100

	remaining := *overallTarget - balance
	if remaining < 0 {
		remaining = 0
	}
	snap.Remaining = roundCents(remaining)

	return snap
}

// daysBetween returns the number of whole days from a to b, rounding partial
// days up. Negative when b precedes a.
func daysBetween(a, b time.Time) int {
	return int(math.Ceil(b.Sub(a).Hours() / 24))
}
