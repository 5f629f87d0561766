package trackermath

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestedContribution_YearOut(t *testing.T) {
	today := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// 365 days / 30.44 ≈ 11.99 → 12 months → 1200 / 12
	suggestion := SuggestedContribution(1200, today.AddDate(0, 0, 365), today)

	require.NotNil(t, suggestion)
	assert.Equal(t, 100.0, *suggestion)
}

func TestSuggestedContribution_RoundsUp(t *testing.T) {
	today := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// 100 days / 30.44 ≈ 3.29 → 4 months → ceil(1000 / 4)
	suggestion := SuggestedContribution(1000, today.AddDate(0, 0, 100), today)

	require.NotNil(t, suggestion)
	assert.Equal(t, 250.0, *suggestion)
}

func TestSuggestedContribution_MinimumOneMonth(t *testing.T) {
	today := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// Due tomorrow: the whole target is suggested at once.
	suggestion := SuggestedContribution(4999.50, today.AddDate(0, 0, 1), today)

	require.NotNil(t, suggestion)
	assert.Equal(t, 5000.0, *suggestion)
}

func TestSuggestedContribution_NoActionableSuggestion(t *testing.T) {
	today := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		target     float64
		targetDate time.Time
	}{
		{"zero target", 0, today.AddDate(0, 6, 0)},
		{"negative target", -100, today.AddDate(0, 6, 0)},
		{"date in the past", 1200, today.AddDate(0, 0, -1)},
		{"date is today", 1200, today},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, SuggestedContribution(tt.target, tt.targetDate, today))
		})
	}
}
