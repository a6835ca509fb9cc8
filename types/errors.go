package types

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrInvalid marks a record rejected by Validate.
var ErrInvalid = errors.New("invalid record")

func invalid(entity, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalid, entity, fmt.Sprintf(format, args...))
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// RoundCents rounds a money amount to two decimal places.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func utc(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return t.UTC()
}
