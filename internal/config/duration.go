package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var durationRegex = regexp.MustCompile(`(?i)^(\d+)\s*(ms|[dhms]?)$`)

// DefaultTick is the render loop interval used when config does not set one.
const DefaultTick = 150 * time.Millisecond

// ParseDuration parses duration strings like "30d", "24h", "60m", "3600s",
// "150ms". If empty string, returns DefaultTick.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultTick, nil
	}

	matches := durationRegex.FindStringSubmatch(s)
	if matches == nil {
		return 0, fmt.Errorf("invalid duration format: %q", s)
	}

	value, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration value: %w", err)
	}

	unit := strings.ToLower(matches[2])
	var multiplier time.Duration

	switch unit {
	case "ms":
		multiplier = time.Millisecond
	case "", "s":
		multiplier = time.Second
	case "m":
		multiplier = time.Minute
	case "h":
		multiplier = time.Hour
	case "d":
		multiplier = 24 * time.Hour
	default:
		return 0, fmt.Errorf("unknown duration unit: %q", unit)
	}

	return time.Duration(value) * multiplier, nil
}
