// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package calc implements the closed-form calculators: age and date
// arithmetic, body metrics, loans, percentages, and trigonometry.
// Calculators validate their inputs and return errors rather than
// partial results.
package calc

import (
	"errors"
	"math"
)

var (
	ErrFutureDate   = errors.New("date is in the future")
	ErrNonPositive  = errors.New("value must be greater than zero")
	ErrNegative     = errors.New("value must not be negative")
	ErrInvalidValue = errors.New("value must be a finite number")
	ErrDivideByZero = errors.New("division by zero")
	ErrUndefined    = errors.New("result is undefined")
	ErrDomain       = errors.New("value outside function domain")
	ErrUnknown      = errors.New("unknown option")
	ErrOutOfRange   = errors.New("value out of range")
)

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
