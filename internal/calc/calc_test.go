// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMI(t *testing.T) {
	tests := []struct {
		name     string
		height   float64
		weight   float64
		want     float64
		category BMICategory
	}{
		{"exactly 25 is overweight", 180, 81, 25.0, Overweight},
		{"healthy", 180, 80, 24.7, HealthyWeight},
		{"underweight", 170, 50, 17.3, Underweight},
		{"obese", 160, 90, 35.2, Obese},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BMI(tt.height, tt.weight)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.BMI)
			assert.Equal(t, tt.category, got.Category)
		})
	}
}

func TestBMIHealthyRange(t *testing.T) {
	got, err := BMI(180, 81)
	require.NoError(t, err)
	assert.Equal(t, 59.9, got.MinHealthy)
	assert.Equal(t, 80.7, got.MaxHealthy)
}

func TestClassifyBMIBoundaries(t *testing.T) {
	assert.Equal(t, Underweight, ClassifyBMI(18.4))
	assert.Equal(t, HealthyWeight, ClassifyBMI(18.5))
	assert.Equal(t, HealthyWeight, ClassifyBMI(24.9))
	assert.Equal(t, Overweight, ClassifyBMI(25))
	assert.Equal(t, Overweight, ClassifyBMI(29.9))
	assert.Equal(t, Obese, ClassifyBMI(30))
}

func TestBMIErrors(t *testing.T) {
	_, err := BMI(0, 70)
	assert.ErrorIs(t, err, ErrNonPositive)
	_, err = BMI(170, -1)
	assert.ErrorIs(t, err, ErrNonPositive)
	_, err = BMI(math.NaN(), 70)
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = BMIImperial(-5, 0, 150)
	assert.ErrorIs(t, err, ErrNegative)
}

func TestBMIImperial(t *testing.T) {
	got, err := BMIImperial(5, 11, 160)
	require.NoError(t, err)
	assert.Equal(t, 22.3, got.BMI)
	assert.Equal(t, HealthyWeight, got.Category)
}

func TestBMR(t *testing.T) {
	base := BMRInput{Sex: Male, WeightKg: 80, HeightCm: 180, AgeYears: 30}

	tests := []struct {
		name string
		mod  func(in BMRInput) BMRInput
		want float64
	}{
		{"mifflin male default", func(in BMRInput) BMRInput { return in }, 1780},
		{"mifflin female", func(in BMRInput) BMRInput { in.Sex = Female; return in }, 1614},
		{"harris-benedict male", func(in BMRInput) BMRInput { in.Formula = HarrisBenedict; return in }, 1853.632},
		{"harris-benedict female", func(in BMRInput) BMRInput {
			in.Sex, in.Formula = Female, HarrisBenedict
			return in
		}, 9.247*80 + 3.098*180 - 4.330*30 + 447.593},
		{"katch-mcardle", func(in BMRInput) BMRInput {
			in.Formula, in.BodyFatPercent = KatchMcArdle, 20
			return in
		}, 1752.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BMR(tt.mod(base))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestBMRErrors(t *testing.T) {
	_, err := BMR(BMRInput{Sex: "other", WeightKg: 80, HeightCm: 180, AgeYears: 30})
	assert.ErrorIs(t, err, ErrUnknown)

	_, err = BMR(BMRInput{Sex: Male, WeightKg: 80, HeightCm: 180, AgeYears: 0})
	assert.ErrorIs(t, err, ErrNonPositive)

	_, err = BMR(BMRInput{Sex: Male, WeightKg: 80, HeightCm: 180, AgeYears: 30, Formula: KatchMcArdle})
	assert.ErrorIs(t, err, ErrDomain)

	_, err = BMR(BMRInput{Sex: Male, WeightKg: 80, HeightCm: 180, AgeYears: 30, Formula: "guess"})
	assert.ErrorIs(t, err, ErrUnknown)
}

func TestCalories(t *testing.T) {
	in := BMRInput{Sex: Male, WeightKg: 80, HeightCm: 180, AgeYears: 30}
	got, err := Calories(in, Moderate)
	require.NoError(t, err)

	assert.InDelta(t, 1780, got.BMR, 1e-9)
	assert.InDelta(t, 2759, got.TDEE, 1e-9)
	require.Len(t, got.Goals, 6)
	assert.Equal(t, "maintain", got.Goals[0].Name)
	assert.InDelta(t, 2759, got.Goals[0].Calories, 1e-9)
	assert.Equal(t, "weight loss", got.Goals[2].Name)
	assert.InDelta(t, 2259, got.Goals[2].Calories, 1e-9)

	_, err = Calories(in, "couch")
	assert.ErrorIs(t, err, ErrUnknown)
}

func TestLoanZeroRate(t *testing.T) {
	got, err := Loan(1000, 0, 12)
	require.NoError(t, err)

	assert.Equal(t, 1000.0/12, got.MonthlyPayment)
	assert.InDelta(t, 1000, got.TotalPayment, 1e-9)
	assert.InDelta(t, 0, got.TotalInterest, 1e-9)
	require.Len(t, got.Schedule, 12)
	assert.Equal(t, 0.0, got.Schedule[11].Balance)
	assert.Equal(t, 0.0, got.Schedule[0].Interest)
}

func TestLoanWithInterest(t *testing.T) {
	got, err := Loan(10000, 12, 12)
	require.NoError(t, err)

	assert.InDelta(t, 888.4879, got.MonthlyPayment, 1e-4)
	assert.InDelta(t, 661.85, got.TotalInterest, 0.01)
	assert.InDelta(t, 100, got.Schedule[0].Interest, 1e-9)
	assert.InDelta(t, 788.4879, got.Schedule[0].Principal, 1e-4)
	assert.Equal(t, 0.0, got.Schedule[11].Balance)

	var principal float64
	for _, inst := range got.Schedule {
		principal += inst.Principal
	}
	assert.InDelta(t, 10000, principal, 1e-6)
}

func TestLoanErrors(t *testing.T) {
	_, err := Loan(0, 5, 12)
	assert.ErrorIs(t, err, ErrNonPositive)
	_, err = Loan(1000, -1, 12)
	assert.ErrorIs(t, err, ErrNegative)
	_, err = Loan(1000, 5, 0)
	assert.ErrorIs(t, err, ErrNonPositive)
	_, err = Loan(math.Inf(1), 5, 12)
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = Loan(1000, 5, math.MaxInt32)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = Loan(1000, 5, MaxLoanMonths+1)
	assert.ErrorIs(t, err, ErrOutOfRange)

	got, err := Loan(1000, 5, MaxLoanMonths)
	require.NoError(t, err)
	assert.Len(t, got.Schedule, MaxLoanMonths)
}

func TestPercentages(t *testing.T) {
	v, err := PercentOf(20, 50)
	require.NoError(t, err)
	assert.InDelta(t, 10, v, 1e-12)

	v, err = WhatPercent(25, 200)
	require.NoError(t, err)
	assert.InDelta(t, 12.5, v, 1e-12)

	v, err = PercentChange(50, 75)
	require.NoError(t, err)
	assert.InDelta(t, 50, v, 1e-12)

	v, err = PercentChange(100, 80)
	require.NoError(t, err)
	assert.InDelta(t, -20, v, 1e-12)

	v, err = ApplyPercent(200, -10)
	require.NoError(t, err)
	assert.InDelta(t, 180, v, 1e-12)

	_, err = WhatPercent(1, 0)
	assert.ErrorIs(t, err, ErrDivideByZero)
	_, err = PercentChange(0, 5)
	assert.ErrorIs(t, err, ErrDivideByZero)
	_, err = PercentOf(math.NaN(), 1)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestTrig(t *testing.T) {
	tests := []struct {
		fn    TrigFunc
		angle float64
		unit  AngleUnit
		want  float64
	}{
		{Sin, 30, Degrees, 0.5},
		{Sin, 180, Degrees, 0},
		{Cos, 90, Degrees, 0},
		{Cos, 60, Degrees, 0.5},
		{Tan, 45, Degrees, 1},
		{Sec, 60, Degrees, 2},
		{Csc, 30, Degrees, 2},
		{Cot, 45, Degrees, 1},
		{Sin, math.Pi / 2, Radians, 1},
	}
	for _, tt := range tests {
		got, err := Trig(tt.fn, tt.angle, tt.unit)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-12, "%s(%v %s)", tt.fn, tt.angle, tt.unit)
	}

	got, err := Trig(Sin, 180, Degrees)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestTrigUndefined(t *testing.T) {
	for _, tc := range []struct {
		fn    TrigFunc
		angle float64
	}{
		{Tan, 90}, {Tan, 270}, {Sec, 90}, {Csc, 0}, {Csc, 180}, {Cot, 0},
	} {
		_, err := Trig(tc.fn, tc.angle, Degrees)
		assert.ErrorIs(t, err, ErrUndefined, "%s(%v)", tc.fn, tc.angle)
	}

	_, err := Trig(Sin, 1, "gradian")
	assert.ErrorIs(t, err, ErrUnknown)
	_, err = Trig("sinh", 1, Degrees)
	assert.ErrorIs(t, err, ErrUnknown)
}

func TestInverseTrig(t *testing.T) {
	got, err := InverseTrig(Asin, 0.5, Degrees)
	require.NoError(t, err)
	assert.InDelta(t, 30, got, 1e-9)

	got, err = InverseTrig(Acos, 0, Degrees)
	require.NoError(t, err)
	assert.InDelta(t, 90, got, 1e-9)

	got, err = InverseTrig(Atan, 1, Radians)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/4, got, 1e-12)

	_, err = InverseTrig(Acos, 2, Degrees)
	assert.ErrorIs(t, err, ErrDomain)
	_, err = InverseTrig(Sin, 0.5, Degrees)
	assert.ErrorIs(t, err, ErrUnknown)
}

func TestPercentageDispatch(t *testing.T) {
	tests := []struct {
		op   PercentOp
		a, b float64
		want float64
	}{
		{OpPercentOf, 10, 250, 25},
		{OpWhatPercent, 50, 200, 25},
		{OpChange, 200, 250, 25},
		{OpApply, 100, 25, 125},
	}
	for _, tt := range tests {
		got, err := Percentage(tt.op, tt.a, tt.b)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-12, string(tt.op))
	}

	_, err := Percentage("ratio", 1, 2)
	assert.ErrorIs(t, err, ErrUnknown)
}

func TestEvaluate(t *testing.T) {
	got, err := Evaluate(Sin, 90, Degrees)
	require.NoError(t, err)
	assert.InDelta(t, 1, got, 1e-12)

	got, err = Evaluate(Asin, 1, Degrees)
	require.NoError(t, err)
	assert.InDelta(t, 90, got, 1e-9)
}
