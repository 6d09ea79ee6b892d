package availability

import (
	"fmt"
	"time"
)

const (
	MinDay = 1
	MaxDay = 31
)

// Period is a calendar month to check
type Period struct {
	Year  int
	Month time.Month
}

// NewPeriod validates year and month and returns a Period
func NewPeriod(year, month int) (Period, error) {
	if year < 1000 || year > 9999 {
		return Period{}, fmt.Errorf("invalid year: %d (must be four digits)", year)
	}
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("invalid month: %d (must be 1-12)", month)
	}
	return Period{Year: year, Month: time.Month(month)}, nil
}

// String renders the period as YYYY-MM
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Code renders the period as YYYYMM, the form the booking calendar expects
func (p Period) Code() string {
	return fmt.Sprintf("%04d%02d", p.Year, int(p.Month))
}

// ValidateDays checks that every requested day is within 1..31
func ValidateDays(days []int) error {
	for _, d := range days {
		if d < MinDay || d > MaxDay {
			return fmt.Errorf("invalid date: %d (must be %d-%d)", d, MinDay, MaxDay)
		}
	}
	return nil
}

// UniqueDays returns days with duplicates removed, keeping first occurrences in order
func UniqueDays(days []int) []int {
	seen := make(map[int]bool, len(days))
	unique := make([]int, 0, len(days))
	for _, d := range days {
		if !seen[d] {
			seen[d] = true
			unique = append(unique, d)
		}
	}
	return unique
}

// Slot is a bookable day and the link to book it
type Slot struct {
	Day  int    `json:"day"`
	Link string `json:"link"`
}

// Result is the outcome of one availability check
type Result struct {
	Period Period
	Slots  []Slot
	// Err is set when the check could not be completed. Slots is empty in that case.
	Err error
}

// Failed creates an empty Result recording why the check did not complete
func Failed(period Period, err error) Result {
	return Result{Period: period, Slots: []Slot{}, Err: err}
}

// Empty reports whether no requested day is available
func (r Result) Empty() bool {
	return len(r.Slots) == 0
}

// Days returns the available days in check order
func (r Result) Days() []int {
	days := make([]int, 0, len(r.Slots))
	for _, s := range r.Slots {
		days = append(days, s.Day)
	}
	return days
}
