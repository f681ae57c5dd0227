package size

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var sizeRegex = regexp.MustCompile(`(?i)^(\d+(?:\.\d+)?)\s*([KMGT]?I?B?)$`)

var suffixes = [...]string{"B", "KB", "MB", "GB", "TB"}

// ParseSize parses human-readable size string to bytes.
// Supports: B, K/KB, M/MB, G/GB, T/TB (case insensitive).
func ParseSize(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty size string")
	}

	matches := sizeRegex.FindStringSubmatch(s)
	if matches == nil {
		return 0, fmt.Errorf("invalid size format: %q", s)
	}

	value, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, fmt.Errorf("parse size value: %w", err)
	}

	unit := strings.ToUpper(matches[2])
	var multiplier float64

	switch unit {
	case "", "B":
		multiplier = 1
	case "K", "KB", "KIB":
		multiplier = 1024
	case "M", "MB", "MIB":
		multiplier = 1024 * 1024
	case "G", "GB", "GIB":
		multiplier = 1024 * 1024 * 1024
	case "T", "TB", "TIB":
		multiplier = 1024 * 1024 * 1024 * 1024
	default:
		return 0, fmt.Errorf("unknown size unit: %q", unit)
	}

	return uint64(value * multiplier), nil
}

// FormatSize formats bytes as a human-readable string using 1024-based
// units with two-decimal precision: FormatSize(1024) == "1.00 KB".
func FormatSize(bytes uint64) string {
	value := float64(bytes)
	tier := 0
	for value >= 1024 && tier < len(suffixes)-1 {
		value /= 1024
		tier++
	}
	return fmt.Sprintf("%.2f %s", value, suffixes[tier])
}
