// Package filters validates the city, month and day selections of a session.
//
// Validation is pure: each Parse function maps raw input to a normalized
// token or a wrapped sentinel error. Prompting lives in the caller.
package filters

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// All disables the month or day filter
const All = "all"

var (
	ErrInvalidCity  = errors.New("invalid city")
	ErrInvalidMonth = errors.New("invalid month")
	ErrInvalidDay   = errors.New("invalid day")
)

// Months are the months covered by the trip files, in calendar order
var Months = []string{"january", "february", "march", "april", "may", "june"}

// Days are the selectable weekdays
var Days = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// Selection is a validated set of session filters
type Selection struct {
	City  string
	Month string
	Day   string
}

func (s Selection) String() string {
	return fmt.Sprintf("city=%s month=%s day=%s", s.City, s.Month, s.Day)
}

// ParseCity validates input against the configured city names.
func ParseCity(input string, cities []string) (string, error) {
	city := normalize(input)
	if slices.Contains(cities, city) {
		return city, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCity, input)
}

// ParseMonth accepts one of Months or All.
func ParseMonth(input string) (string, error) {
	month := normalize(input)
	if month == All || slices.Contains(Months, month) {
		return month, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMonth, input)
}

// ParseDay accepts one of Days or All.
func ParseDay(input string) (string, error) {
	day := normalize(input)
	if day == All || slices.Contains(Days, day) {
		return day, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDay, input)
}

// MonthNumber returns the 1-based position of month in Months, or 0.
func MonthNumber(month string) int {
	return slices.Index(Months, normalize(month)) + 1
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
