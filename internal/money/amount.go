package money

import (
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// ParseSigned parses a user or file supplied amount. Grouped "1,234.56" and
// European "1.234,56" forms are accepted. When both separators appear the last
// one is the decimal point. A lone separator followed by groups of exactly
// three digits is read as grouping, so "1,000" is a thousand and "12,50" is
// twelve and a half.
func ParseSigned(s string) (float64, error) {
	clean := normalize(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	if clean == "" {
		return 0, ErrInvalidAmount
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	f, _ := d.Float64()
	if !IsFinite(f) {
		return 0, ErrInvalidAmount
	}

	return f, nil
}

func normalize(s string) string {
	comma, dot := strings.LastIndex(s, ","), strings.LastIndex(s, ".")

	switch {
	case comma >= 0 && dot >= 0:
		if comma > dot {
			return strings.ReplaceAll(strings.ReplaceAll(s, ".", ""), ",", ".")
		}

		return strings.ReplaceAll(s, ",", "")
	case comma >= 0:
		if grouped(s, ",") {
			return strings.ReplaceAll(s, ",", "")
		}

		return strings.ReplaceAll(s, ",", ".")
	case strings.Count(s, ".") > 1 && grouped(s, "."):
		return strings.ReplaceAll(s, ".", "")
	}

	return s
}

// grouped reports whether sep splits s into a leading run of one to three
// digits, not a lone zero, followed only by three digit groups.
func grouped(s, sep string) bool {
	parts := strings.Split(strings.TrimLeft(s, "+-"), sep)
	if len(parts[0]) == 0 || len(parts[0]) > 3 || parts[0] == "0" || !digits(parts[0]) {
		return false
	}

	for _, p := range parts[1:] {
		if len(p) != 3 || !digits(p) {
			return false
		}
	}

	return true
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// Parse parses a positive amount, rejecting zero and negative values.
func Parse(s string) (float64, error) {
	f, err := ParseSigned(s)
	if err != nil {
		return 0, err
	}

	if f <= 0 {
		return 0, ErrInvalidAmount
	}

	return f, nil
}

// IsFinite reports whether f is neither NaN nor an infinity.
func IsFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
