package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.November, 3, 10, 0, 0, 0, time.UTC)

// TestParseRelativeTimeUnit covers various valid and invalid cases.
func TestParseRelativeTimeUnit(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    time.Time
		expectError bool
	}{
		{
			name:     "valid plural months (mixed case)",
			input:    "3 MoNtHs AgO",
			expected: fixedNow.AddDate(0, -3, 0),
		},
		{
			name:     "valid singular week (capitalized)",
			input:    "1 Week Ago",
			expected: fixedNow.Add(-7 * 24 * time.Hour),
		},
		{
			name:     "valid 10 days (upper case)",
			input:    "10 DAYS AGO",
			expected: fixedNow.Add(-10 * 24 * time.Hour),
		},
		{
			name:     "valid hours",
			input:    "5 hours ago",
			expected: fixedNow.Add(-5 * time.Hour),
		},
		{
			name:        "invalid missing ago",
			input:       "2 years",
			expectError: true,
		},
		{
			name:        "invalid bad unit (decades)",
			input:       "4 decades ago",
			expectError: true,
		},
		{
			name:        "invalid non-numeric value",
			input:       "one year ago",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tResult, err := ParseRelativeTime(tt.input, fixedNow)

			if tt.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, tResult, "Parsed time mismatch")
			}
		})
	}
}

func TestParseTimeArg(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	tests := []struct {
		name      string
		input     string
		loc       *time.Location
		want      time.Time
		expectErr bool
	}{
		{"now keyword", "NOW", time.UTC, fixedNow, false},
		{"rfc3339", "2025-01-06T09:00:00Z", time.UTC, time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC), false},
		{"calendar date in location", "2025-01-06", tokyo, time.Date(2025, 1, 6, 0, 0, 0, 0, tokyo), false},
		{"relative", "2 weeks ago", time.UTC, fixedNow.AddDate(0, 0, -14), false},
		{"surrounding space", "  2025-01-06 ", time.UTC, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), false},
		{"garbage", "yesterday-ish", time.UTC, time.Time{}, true},
		{"empty", "", time.UTC, time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeArg(tt.input, fixedNow, tt.loc)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestParseTimezone(t *testing.T) {
	loc, err := ParseTimezone("")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = ParseTimezone("Local")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = ParseTimezone("UTC")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = ParseTimezone("Mars/Olympus_Mons")
	assert.Error(t, err)
}
