package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidDuration = errors.New("invalid duration")

// ParseDuration converts "H:MM" or "HH:MM" into minutes.
func ParseDuration(s string) (int, error) {
	s = strings.TrimSpace(s)
	hours, mins, ok := strings.Cut(s, ":")
	if !ok || len(hours) < 1 || len(hours) > 2 || len(mins) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	h, err := parseDigits(hours)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	m, err := parseDigits(mins)
	if err != nil || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	return h*60 + m, nil
}

// FormatDuration renders minutes as "H:MM".
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// strconv.Atoi alone would accept signs.
func parseDigits(s string) (int, error) {
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("not a digit: %q", c)
		}
	}
	return strconv.Atoi(s)
}
