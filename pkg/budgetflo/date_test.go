package budgetflo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		year  int
		month int
		day   int
	}{
		{"date only", `"2026-03-15"`, 2026, 3, 15},
		{"rfc3339", `"2026-03-15T10:30:00Z"`, 2026, 3, 15},
		{"datetime without zone", `"2026-03-15T10:30:00"`, 2026, 3, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.year, d.Year())
			assert.Equal(t, tt.month, int(d.Month()))
			assert.Equal(t, tt.day, d.Day())
		})
	}
}

func TestDate_UnmarshalNull(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
}

func TestDate_UnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"15/03/2026"`), &d))
}

func TestDate_Marshal(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-03-15"`), &d))

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-15"`, string(out))
}

func TestErrorHelpers(t *testing.T) {
	assert.True(t, IsAuthError(ErrNotAuthenticated))
	assert.True(t, IsAuthError(ErrSessionExpired))
	assert.False(t, IsAuthError(ErrNotFound))

	assert.True(t, IsRetryable(ErrRateLimited))
	assert.True(t, IsRetryable(ErrTimeout))
	assert.False(t, IsRetryable(ErrLoginFailed))
}
