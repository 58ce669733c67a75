// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package units

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNotNumber is returned by Parse for empty or non-numeric input.
var ErrNotNumber = errors.New("not a number")

// Parse reads a user-entered number. Surrounding spaces and thousands
// separators are ignored.
func Parse(input string) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(input), ",", "")
	if s == "" {
		return 0, ErrNotNumber
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q: %w", input, ErrNotNumber)
	}
	return v, nil
}

// Format renders v with at most precision decimal places and no trailing
// zeros. Magnitudes too large or too small for that precision switch to
// exponent notation.
func Format(v float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	if v == 0 {
		return "0"
	}
	abs := math.Abs(v)
	if abs >= 1e15 || abs < math.Pow10(-precision) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}
