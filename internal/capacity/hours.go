package capacity

import "math"

// WeeksPerMonth converts between the stored weekly capacity and the monthly figure.
const WeeksPerMonth = 4

// MonthlyFromWeekly derives the monthly figure shown to users.
func MonthlyFromWeekly(weekly float64) float64 {
	return weekly * WeeksPerMonth
}

// WeeklyFromMonthly converts a monthly figure into the stored weekly capacity.
func WeeklyFromMonthly(monthly float64) float64 {
	return monthly / WeeksPerMonth
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
