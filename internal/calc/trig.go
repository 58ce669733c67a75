// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package calc

import (
	"fmt"
	"math"
)

// AngleUnit selects degrees or radians for trigonometric input and output.
type AngleUnit string

const (
	Degrees AngleUnit = "degree"
	Radians AngleUnit = "radian"
)

// TrigFunc names a trigonometric function.
type TrigFunc string

const (
	Sin  TrigFunc = "sin"
	Cos  TrigFunc = "cos"
	Tan  TrigFunc = "tan"
	Csc  TrigFunc = "csc"
	Sec  TrigFunc = "sec"
	Cot  TrigFunc = "cot"
	Asin TrigFunc = "asin"
	Acos TrigFunc = "acos"
	Atan TrigFunc = "atan"
)

// snap is the magnitude below which sines and cosines count as zero, so
// that sin(180°) is 0 rather than 1.2e-16.
const snap = 1e-12

// Trig evaluates fn at angle, given in unit.
func Trig(fn TrigFunc, angle float64, unit AngleUnit) (float64, error) {
	if !finite(angle) {
		return 0, ErrInvalidValue
	}
	rad, err := toRadians(angle, unit)
	if err != nil {
		return 0, err
	}

	sin, cos := snapZero(math.Sin(rad)), snapZero(math.Cos(rad))
	switch fn {
	case Sin:
		return sin, nil
	case Cos:
		return cos, nil
	case Tan:
		return ratio(sin, cos, fn, angle)
	case Sec:
		return ratio(1, cos, fn, angle)
	case Csc:
		return ratio(1, sin, fn, angle)
	case Cot:
		return ratio(cos, sin, fn, angle)
	default:
		return 0, fmt.Errorf("function %q: %w", fn, ErrUnknown)
	}
}

// InverseTrig evaluates the inverse function fn at x and returns the angle
// in unit.
func InverseTrig(fn TrigFunc, x float64, unit AngleUnit) (float64, error) {
	if !finite(x) {
		return 0, ErrInvalidValue
	}
	if unit != Degrees && unit != Radians {
		return 0, fmt.Errorf("angle unit %q: %w", unit, ErrUnknown)
	}

	var rad float64
	switch fn {
	case Asin, Acos:
		if x < -1 || x > 1 {
			return 0, fmt.Errorf("%s(%v): %w", fn, x, ErrDomain)
		}
		if fn == Asin {
			rad = math.Asin(x)
		} else {
			rad = math.Acos(x)
		}
	case Atan:
		rad = math.Atan(x)
	default:
		return 0, fmt.Errorf("function %q: %w", fn, ErrUnknown)
	}

	if unit == Degrees {
		return rad * 180 / math.Pi, nil
	}
	return rad, nil
}

func toRadians(angle float64, unit AngleUnit) (float64, error) {
	switch unit {
	case Degrees:
		return angle * math.Pi / 180, nil
	case Radians:
		return angle, nil
	default:
		return 0, fmt.Errorf("angle unit %q: %w", unit, ErrUnknown)
	}
}

func ratio(num, den float64, fn TrigFunc, angle float64) (float64, error) {
	if den == 0 {
		return 0, fmt.Errorf("%s(%v): %w", fn, angle, ErrUndefined)
	}
	return snapZero(num / den), nil
}

func snapZero(v float64) float64 {
	if math.Abs(v) < snap {
		return 0
	}
	return v
}

// Evaluate dispatches to Trig or InverseTrig depending on fn. For inverse
// functions x is the ratio and the result is an angle in unit.
func Evaluate(fn TrigFunc, x float64, unit AngleUnit) (float64, error) {
	switch fn {
	case Asin, Acos, Atan:
		return InverseTrig(fn, x, unit)
	default:
		return Trig(fn, x, unit)
	}
}
