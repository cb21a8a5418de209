// Package calendar builds the month grid and the date keys that join grid
// cells to events.
package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Cells is the fixed number of positions in a month grid (6 weeks × 7 days).
const Cells = 42

// ErrInvalidDateKey is returned when a string is not a YYYY-MM-DD date key.
var ErrInvalidDateKey = errors.New("calendar: invalid date key")

// MonthNames holds the month labels indexed by zero-based month.
var MonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// WeekdayLabels are the grid column headers, Sunday first.
var WeekdayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

const layoutDisplay = "Monday, January 2, 2006"

// DaysIn returns the number of days in the zero-based month of year.
func DaysIn(year, month int) int {
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.Local).Day()
}

// FirstWeekday returns the weekday of the first day of the month.
func FirstWeekday(year, month int) time.Weekday {
	return time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.Local).Weekday()
}

// Grid returns exactly Cells entries for the month: leading zeros up to the
// first weekday, the day numbers in order, then trailing zeros. A zero entry
// is an empty cell.
func Grid(year, month int) []int {
	cells := make([]int, Cells)
	offset := int(FirstWeekday(year, month))
	days := DaysIn(year, month)
	for d := 1; d <= days; d++ {
		cells[offset+d-1] = d
	}
	return cells
}

// DateKey formats a zero-based month and day as YYYY-MM-DD.
func DateKey(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month+1, day)
}

// ParseDateKey splits a YYYY-MM-DD key into year, zero-based month and day.
func ParseDateKey(key string) (year, month, day int, err error) {
	parts := strings.Split(strings.TrimSpace(key), "-")
	// A leading '-' is a negative year.
	if len(parts) == 4 && parts[0] == "" {
		parts = []string{"-" + parts[1], parts[2], parts[3]}
	}
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
		}
		nums[i] = n
	}
	year, month, day = nums[0], nums[1]-1, nums[2]
	if month < 0 || month > 11 || day < 1 || day > DaysIn(year, month) {
		return 0, 0, 0, fmt.Errorf("%w: %q out of range", ErrInvalidDateKey, key)
	}
	return year, month, day, nil
}

// Local returns the local midnight for a date key. The key is split into
// numeric parts so that it never shifts by a day the way a UTC parse would.
func Local(key string) (time.Time, error) {
	y, m, d, err := ParseDateKey(key)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(y, time.Month(m+1), d, 0, 0, 0, 0, time.Local), nil
}

// DisplayDate renders a date key in long form, e.g.
// "Wednesday, November 12, 2025". Malformed keys render as "".
func DisplayDate(key string) string {
	t, err := Local(key)
	if err != nil {
		return ""
	}
	return t.Format(layoutDisplay)
}

// MonthTitle renders "November 2025" for a zero-based month.
func MonthTitle(year, month int) string {
	return fmt.Sprintf("%s %d", MonthNames[month], year)
}
