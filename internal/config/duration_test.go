package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"", DefaultTick},
		{"150ms", 150 * time.Millisecond},
		{"30", 30 * time.Second},
		{"3600s", 3600 * time.Second},
		{"60m", 60 * time.Minute},
		{"24h", 24 * time.Hour},
		{"30d", 30 * 24 * time.Hour},
		{" 5s ", 5 * time.Second},
		{"10 M", 10 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDurationInvalid(t *testing.T) {
	tests := []string{
		"abc",
		"-5s",
		"1.5h",
		"5w",
		"ms",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDuration(input)
			assert.Error(t, err)
		})
	}
}
