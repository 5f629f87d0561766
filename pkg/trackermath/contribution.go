package trackermath

import (
	"math"
	"time"
)

// daysPerMonth approximates the average length of a calendar month. The
// front end has always used this constant rather than calendar arithmetic,
// so it must stay at 30.44 for the suggestions to line up.
const daysPerMonth = 30.44

// SuggestedContribution returns the periodic amount needed to reach
// targetAmount by targetDate, rounded up to the whole unit. It returns nil
// when the target is not positive or the date is not in the future, since
// there is no actionable suggestion for an already-due or empty target.
func SuggestedContribution(targetAmount float64, targetDate, today time.Time) *float64 {
	if targetAmount <= 0 || !targetDate.After(today) {
		return nil
	}

	days := targetDate.Sub(today).Hours() / 24
	months := math.Ceil(days / daysPerMonth)
	if months < 1 {
		months = 1
	}

	suggestion := math.Ceil(targetAmount / months)
	return &suggestion
}
