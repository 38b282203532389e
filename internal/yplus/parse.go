package yplus

import (
	"math"
	"strconv"
	"strings"
)

// Predicate reports whether a parsed value lies inside a field's domain.
type Predicate func(v float64) bool

// Positive accepts finite values strictly greater than zero.
func Positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// NonNegative accepts finite values greater than or equal to zero.
func NonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

// ParseField parses text as a float64 and checks it against valid.
// Returns NaN if parsing fails or the value is outside the domain.
func ParseField(text string, valid Predicate) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) {
		return math.NaN()
	}
	if valid != nil && !valid(v) {
		return math.NaN()
	}
	return v
}
