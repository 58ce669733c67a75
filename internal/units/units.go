// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package units converts values between units of the same physical category.
// Every unit is expressed against its category's base unit; a conversion maps
// the input to the base unit and back out to the target unit.
package units

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Category names a family of interchangeable units.
type Category string

const (
	Angle       Category = "angle"
	Area        Category = "area"
	Digital     Category = "digital"
	Energy      Category = "energy"
	Frequency   Category = "frequency"
	Fuel        Category = "fuel"
	Length      Category = "length"
	Mass        Category = "mass"
	Pressure    Category = "pressure"
	Speed       Category = "speed"
	Temperature Category = "temperature"
	Time        Category = "time"
	Volume      Category = "volume"
)

var (
	ErrUnknownCategory = errors.New("unknown unit category")
	ErrUnknownUnit     = errors.New("unknown unit")
	ErrInvalidValue    = errors.New("value must be a finite number")
	ErrUndefined       = errors.New("conversion undefined for this value")
)

// Unit describes one unit relative to its category's base unit.
//
// Linear and affine units map to the base as v*Factor + Offset. Inverse
// units (fuel consumption per distance) map as Factor / v.
type Unit struct {
	Key     string  `json:"key" yaml:"key"`
	Name    string  `json:"name" yaml:"name"`
	Symbol  string  `json:"symbol" yaml:"symbol"`
	Factor  float64 `json:"factor" yaml:"factor"`
	Offset  float64 `json:"offset,omitempty" yaml:"offset,omitempty"`
	Inverse bool    `json:"inverse,omitempty" yaml:"inverse,omitempty"`
}

// Linear reports whether the unit is a pure multiple of the base unit.
func (u Unit) Linear() bool {
	return !u.Inverse && u.Offset == 0
}

func (u Unit) toBase(v float64) (float64, error) {
	if u.Inverse {
		if v == 0 {
			return 0, fmt.Errorf("%s of 0: %w", u.Key, ErrUndefined)
		}
		return u.Factor / v, nil
	}
	return v*u.Factor + u.Offset, nil
}

func (u Unit) fromBase(b float64) (float64, error) {
	if u.Inverse {
		if b == 0 {
			return 0, fmt.Errorf("%s of 0: %w", u.Key, ErrUndefined)
		}
		return u.Factor / b, nil
	}
	return (b - u.Offset) / u.Factor, nil
}

// Table lists the units of one category.
type Table struct {
	Category Category `json:"category" yaml:"category"`
	Base     string   `json:"base" yaml:"base"`
	Units    []Unit   `json:"units" yaml:"units"`
}

// Unit returns the unit with the given key.
func (t Table) Unit(key string) (Unit, error) {
	for _, u := range t.Units {
		if u.Key == key {
			return u, nil
		}
	}
	return Unit{}, fmt.Errorf("%s unit %q: %w", t.Category, key, ErrUnknownUnit)
}

// Keys returns the unit keys in table order.
func (t Table) Keys() []string {
	keys := make([]string, len(t.Units))
	for i, u := range t.Units {
		keys[i] = u.Key
	}
	return keys
}

// Convert converts v from one unit of the table to another.
func (t Table) Convert(v float64, from, to string) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidValue
	}
	src, err := t.Unit(from)
	if err != nil {
		return 0, err
	}
	dst, err := t.Unit(to)
	if err != nil {
		return 0, err
	}
	if from == to {
		return v, nil
	}
	base, err := src.toBase(v)
	if err != nil {
		return 0, err
	}
	return dst.fromBase(base)
}

// Lookup returns the table for a category.
func Lookup(c Category) (Table, error) {
	t, ok := registry[c]
	if !ok {
		return Table{}, fmt.Errorf("%q: %w", c, ErrUnknownCategory)
	}
	return t, nil
}

// Categories returns every known category in alphabetical order.
func Categories() []Category {
	cats := make([]Category, 0, len(registry))
	for c := range registry {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}

// Convert converts v between two units of category c.
func Convert(c Category, v float64, from, to string) (float64, error) {
	t, err := Lookup(c)
	if err != nil {
		return 0, err
	}
	return t.Convert(v, from, to)
}
