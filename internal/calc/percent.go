// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package calc

import "fmt"

// PercentOf returns p percent of x.
func PercentOf(p, x float64) (float64, error) {
	if !finite(p, x) {
		return 0, ErrInvalidValue
	}
	return p / 100 * x, nil
}

// WhatPercent returns the share of whole that part represents, in percent.
func WhatPercent(part, whole float64) (float64, error) {
	if !finite(part, whole) {
		return 0, ErrInvalidValue
	}
	if whole == 0 {
		return 0, ErrDivideByZero
	}
	return part / whole * 100, nil
}

// PercentChange returns the relative change from one value to another,
// in percent. A decrease is negative.
func PercentChange(from, to float64) (float64, error) {
	if !finite(from, to) {
		return 0, ErrInvalidValue
	}
	if from == 0 {
		return 0, ErrDivideByZero
	}
	return (to - from) / from * 100, nil
}

// ApplyPercent increases x by p percent; a negative p decreases it.
func ApplyPercent(x, p float64) (float64, error) {
	if !finite(p, x) {
		return 0, ErrInvalidValue
	}
	return x * (1 + p/100), nil
}

// PercentOp names one of the percentage calculations.
type PercentOp string

const (
	OpPercentOf   PercentOp = "of"
	OpWhatPercent PercentOp = "what"
	OpChange      PercentOp = "change"
	OpApply       PercentOp = "apply"
)

// Percentage runs op on a and b, in the argument order of the matching
// function: of(p, x), what(part, whole), change(from, to), apply(x, p).
func Percentage(op PercentOp, a, b float64) (float64, error) {
	switch op {
	case OpPercentOf:
		return PercentOf(a, b)
	case OpWhatPercent:
		return WhatPercent(a, b)
	case OpChange:
		return PercentChange(a, b)
	case OpApply:
		return ApplyPercent(a, b)
	default:
		return 0, fmt.Errorf("percentage operation %q: %w", op, ErrUnknown)
	}
}
