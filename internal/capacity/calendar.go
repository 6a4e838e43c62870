package capacity

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/noah-isme/contract-capacity-api/internal/models"
)

const yearMonthLayout = "2006-01"

// GridColumns is the width of the month grid, Sunday first.
const GridColumns = 7

// YearMonth identifies a displayed calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// ParseYearMonth reads a "YYYY-MM" value.
func ParseYearMonth(raw string) (YearMonth, error) {
	t, err := time.Parse(yearMonthLayout, strings.TrimSpace(raw))
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid month %q: expected YYYY-MM", raw)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// YearMonthOf returns the month containing t.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// Next returns the following month.
func (ym YearMonth) Next() YearMonth {
	return ym.shift(1)
}

// Prev returns the preceding month.
func (ym YearMonth) Prev() YearMonth {
	return ym.shift(-1)
}

func (ym YearMonth) shift(months int) YearMonth {
	return YearMonthOf(time.Date(ym.Year, ym.Month+time.Month(months), 1, 0, 0, 0, 0, time.UTC))
}

// FirstDay is the ISO date of day 1.
func (ym YearMonth) FirstDay() string {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC).Format(models.DateLayout)
}

// LastDay is the ISO date of the final day.
func (ym YearMonth) LastDay() string {
	return time.Date(ym.Year, ym.Month, ym.DaysIn(), 0, 0, 0, 0, time.UTC).Format(models.DateLayout)
}

// DaysIn counts the days of the month using day 0 of the next month.
func (ym YearMonth) DaysIn() int {
	return time.Date(ym.Year, ym.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthGrid lays a month out for a picker. Cells holds LeadingBlanks empty
// strings followed by one ISO date per day.
type MonthGrid struct {
	Month         string   `json:"month"`
	LeadingBlanks int      `json:"leading_blanks"`
	Days          int      `json:"days"`
	Columns       int      `json:"columns"`
	Rows          int      `json:"rows"`
	Cells         []string `json:"cells"`
}

// BuildMonthGrid computes the picker layout for ym.
func BuildMonthGrid(ym YearMonth) MonthGrid {
	first := time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
	blanks := int(first.Weekday())
	days := ym.DaysIn()

	cells := make([]string, blanks, blanks+days)
	for day := 1; day <= days; day++ {
		cells = append(cells, first.AddDate(0, 0, day-1).Format(models.DateLayout))
	}

	return MonthGrid{
		Month:         ym.String(),
		LeadingBlanks: blanks,
		Days:          days,
		Columns:       GridColumns,
		Rows:          (len(cells) + GridColumns - 1) / GridColumns,
		Cells:         cells,
	}
}

// DateSelection is the set of days picked in the month grid, kept sorted.
type DateSelection struct {
	dates []string
}

// NewDateSelection builds a selection from dates, dropping duplicates.
func NewDateSelection(dates ...string) (*DateSelection, error) {
	sel := &DateSelection{}
	for _, date := range dates {
		if err := validateDate(date); err != nil {
			return nil, err
		}
		if !sel.Contains(date) {
			sel.dates = append(sel.dates, date)
		}
	}
	sort.Strings(sel.dates)
	return sel, nil
}

// Toggle selects date or, when it is already selected, removes it.
func (s *DateSelection) Toggle(date string) error {
	if err := validateDate(date); err != nil {
		return err
	}
	for i, d := range s.dates {
		if d == date {
			s.dates = append(s.dates[:i], s.dates[i+1:]...)
			return nil
		}
	}
	s.dates = append(s.dates, date)
	sort.Strings(s.dates)
	return nil
}

// Contains reports whether date is selected.
func (s *DateSelection) Contains(date string) bool {
	for _, d := range s.dates {
		if d == date {
			return true
		}
	}
	return false
}

// Dates returns a copy of the selected dates in ascending order.
func (s *DateSelection) Dates() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.dates))
	copy(out, s.dates)
	return out
}

// Len returns the number of selected dates.
func (s *DateSelection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dates)
}

// Clear empties the selection.
func (s *DateSelection) Clear() {
	s.dates = nil
}

func validateDate(date string) error {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	return nil
}
