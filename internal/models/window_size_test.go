package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWindowSizeFromString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		expected  WindowSize
		expectErr bool
	}{
		{
			name:     "minute",
			input:    "minute",
			expected: WindowMinute,
		},
		{
			name:     "hour",
			input:    "hour",
			expected: WindowHour,
		},
		{
			name:      "unknown value",
			input:     "day",
			expectErr: true,
		},
		{
			name:      "empty value",
			input:     "",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			windowSize, err := NewWindowSizeFromString(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, windowSize)
		})
	}
}

func TestWindowSize_Duration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		window   WindowSize
		expected time.Duration
	}{
		{
			name:     "minute window",
			window:   WindowMinute,
			expected: time.Minute,
		},
		{
			name:     "hour window",
			window:   WindowHour,
			expected: time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.window.Duration())
		})
	}
}

func TestWindowSize_Duration_Invalid(t *testing.T) {
	t.Parallel()

	invalidWindow := WindowSize("invalid")
	assert.Panics(t, func() {
		invalidWindow.Duration()
	}, "Duration should panic on invalid WindowSize")
}

func TestWindowSize_Truncate(t *testing.T) {
	t.Parallel()

	// Use a fixed time for deterministic tests
	testTime := time.Date(2025, 12, 28, 18, 3, 45, 123456789, time.UTC)

	tests := []struct {
		name     string
		window   WindowSize
		input    time.Time
		expected time.Time
	}{
		{
			name:     "minute window truncates to minute start",
			window:   WindowMinute,
			input:    testTime,
			expected: time.Date(2025, 12, 28, 18, 3, 0, 0, time.UTC),
		},
		{
			name:     "hour window truncates to hour start",
			window:   WindowHour,
			input:    testTime,
			expected: time.Date(2025, 12, 28, 18, 0, 0, 0, time.UTC),
		},
		{
			name:     "non-UTC input is converted to UTC",
			window:   WindowHour,
			input:    testTime.In(time.FixedZone("UTC+7", 7*3600)),
			expected: time.Date(2025, 12, 28, 18, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.window.Truncate(tt.input))
		})
	}
}
