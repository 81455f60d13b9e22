package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServiceTime(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
	}{
		{input: "08:00:00", expected: 8 * time.Hour},
		{input: " 5:25:50", expected: 5*time.Hour + 25*time.Minute + 50*time.Second},
		{input: "25:01:02", expected: 25*time.Hour + time.Minute + 2*time.Second},
		{input: "0:00:00", expected: 0},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			parsed, err := ParseServiceTime(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.expected, parsed)
		})
	}
}

func TestParseServiceTimeInvalid(t *testing.T) {
	for _, input := range []string{"", "08:00", "aa:00:00", "08:61:00", "08:00:-1", "1:2:3:4"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseServiceTime(input)
			assert.ErrorIs(t, err, ErrInvalidServiceTime)
		})
	}
}

func TestFormatServiceTime(t *testing.T) {
	assert.Equal(t, "08:15:00", FormatServiceTime(8*time.Hour+15*time.Minute))
	assert.Equal(t, "24:30:05", FormatServiceTime(24*time.Hour+30*time.Minute+5*time.Second))
	assert.Equal(t, "--:--:--", FormatServiceTime(MaxServiceTime))
}
