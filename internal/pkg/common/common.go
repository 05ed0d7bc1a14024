package common

import (
	"math"
	"time"
)

// Clamp constrains value to [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// RoundTo2 rounds to two decimal places, the precision carried on USDC
// amounts throughout.
func RoundTo2(value float64) float64 {
	return math.Round(value*100) / 100
}

// SimpleInterest computes interest on principal at an annual percentage rate
// over a term expressed in days, using a 365-day year.
func SimpleInterest(principal, apr float64, durationDays int) float64 {
	return principal * (apr / 100) * (float64(durationDays) / 365)
}

// MonthsSince counts whole 30-day months between t and now. Negative spans
// count as zero.
func MonthsSince(t time.Time, now time.Time) int {
	if !t.Before(now) {
		return 0
	}
	days := now.Sub(t).Hours() / 24
	return int(days / 30)
}

// DueDate returns the repayment deadline for a term starting at start.
func DueDate(start time.Time, durationDays int) time.Time {
	return start.Add(time.Duration(durationDays) * 24 * time.Hour)
}
