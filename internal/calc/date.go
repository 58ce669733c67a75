// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package calc

import "time"

const secondsPerDay = 24 * 60 * 60

// AgeResult is the calendar and total breakdown of an age.
type AgeResult struct {
	Years        int       `json:"years" yaml:"years"`
	Months       int       `json:"months" yaml:"months"`
	Days         int       `json:"days" yaml:"days"`
	TotalMonths  int       `json:"total_months" yaml:"total_months"`
	TotalWeeks   int       `json:"total_weeks" yaml:"total_weeks"`
	TotalDays    int       `json:"total_days" yaml:"total_days"`
	NextBirthday int       `json:"next_birthday_in_days" yaml:"next_birthday_in_days"`
	NextDate     time.Time `json:"next_birthday" yaml:"next_birthday"`
}

// DateDiffResult is the calendar breakdown between two dates.
type DateDiffResult struct {
	Years     int  `json:"years" yaml:"years"`
	Months    int  `json:"months" yaml:"months"`
	Days      int  `json:"days" yaml:"days"`
	TotalDays int  `json:"total_days" yaml:"total_days"`
	Weeks     int  `json:"weeks" yaml:"weeks"`
	Weekdays  int  `json:"weekdays" yaml:"weekdays"`
	Negative  bool `json:"negative" yaml:"negative"`
}

// Age computes the age on date on of someone born on birth. Only the
// calendar date of each argument is used.
func Age(birth, on time.Time) (AgeResult, error) {
	birth, on = dateOnly(birth), dateOnly(on)
	if birth.After(on) {
		return AgeResult{}, ErrFutureDate
	}

	total, days := monthsAndDays(birth, on)
	totalDays := daysBetween(birth, on)

	r := AgeResult{
		Years:       total / 12,
		Months:      total % 12,
		Days:        days,
		TotalMonths: total,
		TotalWeeks:  totalDays / 7,
		TotalDays:   totalDays,
		NextDate:    on,
	}
	if r.Months != 0 || r.Days != 0 {
		r.NextDate = addMonthsClamped(birth, (r.Years+1)*12)
		r.NextBirthday = daysBetween(on, r.NextDate)
	}
	return r, nil
}

// DateDiff computes the span between a and b. When b precedes a the span
// is measured from b to a and Negative is set.
func DateDiff(a, b time.Time) DateDiffResult {
	a, b = dateOnly(a), dateOnly(b)
	var r DateDiffResult
	if b.Before(a) {
		a, b = b, a
		r.Negative = true
	}

	total, days := monthsAndDays(a, b)
	r.Years = total / 12
	r.Months = total % 12
	r.Days = days
	r.TotalDays = daysBetween(a, b)
	r.Weeks = r.TotalDays / 7
	r.Weekdays = weekdaysBetween(a, r.TotalDays)
	return r
}

// AddToDate moves d by the given calendar amounts, forward or backward.
// Month arithmetic clamps to the last day of the target month, so
// January 31 plus one month is the last day of February.
func AddToDate(d time.Time, years, months, days int, subtract bool) time.Time {
	sign := 1
	if subtract {
		sign = -1
	}
	d = dateOnly(d)
	d = addMonthsClamped(d, sign*(years*12+months))
	return d.AddDate(0, 0, sign*days)
}

// monthsAndDays returns the whole months from a to b (a <= b) and the
// remaining days after the last whole month.
func monthsAndDays(a, b time.Time) (int, int) {
	total := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	anchor := addMonthsClamped(a, total)
	if anchor.After(b) {
		total--
		anchor = addMonthsClamped(a, total)
	}
	return total, daysBetween(anchor, b)
}

func addMonthsClamped(d time.Time, n int) time.Time {
	first := time.Date(d.Year(), d.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	last := daysIn(first.Year(), first.Month())
	dd := d.Day()
	if dd > last {
		dd = last
	}
	return time.Date(first.Year(), first.Month(), dd, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// daysBetween counts whole days from a to b. Both must be UTC midnights;
// Unix seconds are used because time.Duration overflows after 292 years.
func daysBetween(a, b time.Time) int {
	return int((b.Unix() - a.Unix()) / secondsPerDay)
}

// weekdaysBetween counts Monday to Friday days in [start, start+n).
func weekdaysBetween(start time.Time, n int) int {
	count := (n / 7) * 5
	wd := start.Weekday()
	for i := 0; i < n%7; i++ {
		if wd != time.Saturday && wd != time.Sunday {
			count++
		}
		wd = (wd + 1) % 7
	}
	return count
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
