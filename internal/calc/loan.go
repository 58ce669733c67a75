// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package calc

import (
	"fmt"
	"math"
)

// MaxLoanMonths caps the tenure, and with it the schedule length (100 years).
const MaxLoanMonths = 1200

// Installment is one row of an amortization schedule.
type Installment struct {
	Month     int     `json:"month" yaml:"month"`
	Payment   float64 `json:"payment" yaml:"payment"`
	Principal float64 `json:"principal" yaml:"principal"`
	Interest  float64 `json:"interest" yaml:"interest"`
	Balance   float64 `json:"balance" yaml:"balance"`
}

// LoanResult holds the repayment figures for a fixed-rate loan.
type LoanResult struct {
	MonthlyPayment float64       `json:"monthly_payment" yaml:"monthly_payment"`
	TotalPayment   float64       `json:"total_payment" yaml:"total_payment"`
	TotalInterest  float64       `json:"total_interest" yaml:"total_interest"`
	Schedule       []Installment `json:"schedule" yaml:"schedule"`
}

// Loan computes the equal monthly installment for principal borrowed at
// annualRatePercent over the given number of months, with its
// amortization schedule. A zero rate divides the principal evenly.
func Loan(principal, annualRatePercent float64, months int) (LoanResult, error) {
	if !finite(principal, annualRatePercent) {
		return LoanResult{}, ErrInvalidValue
	}
	if principal <= 0 {
		return LoanResult{}, fmt.Errorf("principal: %w", ErrNonPositive)
	}
	if annualRatePercent < 0 {
		return LoanResult{}, fmt.Errorf("rate: %w", ErrNegative)
	}
	if months < 1 {
		return LoanResult{}, fmt.Errorf("tenure: %w", ErrNonPositive)
	}
	if months > MaxLoanMonths {
		return LoanResult{}, fmt.Errorf("tenure %d exceeds %d months: %w", months, MaxLoanMonths, ErrOutOfRange)
	}

	r := annualRatePercent / 1200
	n := float64(months)

	var payment float64
	if r == 0 {
		payment = principal / n
	} else {
		growth := math.Pow(1+r, n)
		payment = principal * r * growth / (growth - 1)
	}

	res := LoanResult{
		MonthlyPayment: payment,
		TotalPayment:   payment * n,
		TotalInterest:  payment*n - principal,
		Schedule:       make([]Installment, months),
	}

	balance := principal
	for i := range res.Schedule {
		interest := balance * r
		toPrincipal := payment - interest
		balance -= toPrincipal
		if i == months-1 || balance < 0 {
			balance = 0
		}
		res.Schedule[i] = Installment{
			Month:     i + 1,
			Payment:   payment,
			Principal: toPrincipal,
			Interest:  interest,
			Balance:   balance,
		}
	}
	return res, nil
}
