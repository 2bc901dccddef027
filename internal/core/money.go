// Package core holds the domain types and the pure computation engines:
// derivation of per-trip financial fields, dashboard aggregation, and
// trip list filtering.
//
// This file contains the money representation and the lenient numeric
// parsing used for raw user input.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// Money is an exact monetary amount in cents. All arithmetic in the
// engines happens on cents; rounding and currency formatting are
// presentation concerns.
type Money struct {
	Cents int64
}

// Add returns m + o.
func (m Money) Add(o Money) Money {
	return Money{Cents: m.Cents + o.Cents}
}

// Sub returns m - o.
func (m Money) Sub(o Money) Money {
	return Money{Cents: m.Cents - o.Cents}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.Cents < 0
}

// Float64 returns the amount in currency units for display purposes.
// Use cents for calculations to avoid floating-point drift.
func (m Money) Float64() float64 {
	return float64(m.Cents) / 100.0
}

// String formats the amount as a plain decimal, e.g. "165", "165.5", "-0.03".
func (m Money) String() string {
	cents := m.Cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	if cents%100 == 0 {
		return sign + strconv.FormatInt(cents/100, 10)
	}
	frac := strconv.FormatInt(cents%100, 10)
	if len(frac) == 1 {
		frac = "0" + frac
	}
	s := sign + strconv.FormatInt(cents/100, 10) + "." + frac
	return strings.TrimSuffix(s, "0")
}

// MarshalJSON writes the amount as a plain JSON number in currency units,
// matching the format of previously stored data.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON reads a JSON number or numeric string. Anything unparsable
// decodes to zero rather than failing: garbage numeric input never
// propagates as an error.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		m.Cents = 0
		return nil
	}
	m.Cents = parseCents(s)
	return nil
}

// ParseAmount converts a decimal string to Money. It accepts both dot
// (12.34) and comma (12,34) separators, an optional leading minus, and
// performs half-up rounding on the third decimal place. Unparsable input
// coerces to zero; ParseAmount is total and never fails.
func ParseAmount(s string) Money {
	return Money{Cents: parseCents(s)}
}

// ParseReading converts an odometer or quantity string to a float64,
// coercing unparsable input to zero.
func ParseReading(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseCents(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", ".")
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0
	}
	// Prevent overflow when multiplying by 100
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0
	}
	// Take first two fractional digits; then half-up rounding on third
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}
	cents := iv*100 + fracCents
	if neg {
		cents = -cents
	}
	return cents
}
