package tripdata

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Source columns
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColTripDuration = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

// Derived columns
const (
	ColMonth   = "month"
	ColWeekday = "day_of_week"
	ColHour    = "hour"
)

// RequiredColumns must be present in every trip file
var RequiredColumns = []string{ColStartTime, ColTripDuration, ColStartStation, ColEndStation, ColUserType}

// Table is an immutable set of trip records
type Table struct {
	df dataframe.DataFrame
}

// NewTable wraps an already loaded DataFrame
func NewTable(df dataframe.DataFrame) Table {
	return Table{df: df}
}

// Frame returns the underlying DataFrame
func (t Table) Frame() dataframe.DataFrame {
	return t.df
}

// Len returns the number of trips
func (t Table) Len() int {
	return t.df.Nrow()
}

// Has reports whether the table carries column name
func (t Table) Has(name string) bool {
	for _, n := range t.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Column returns the named column when present.
func (t Table) Column(name string) (series.Series, bool) {
	if !t.Has(name) {
		return series.Series{}, false
	}
	return t.df.Col(name), true
}

// Slice returns rows [from, to) clamped to the table bounds.
func (t Table) Slice(from, to int) Table {
	n := t.Len()
	if from < 0 {
		from = 0
	}
	if to > n {
		to = n
	}
	if from >= to {
		return Table{df: t.df.Subset([]int{})}
	}
	idx := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		idx = append(idx, i)
	}
	return Table{df: t.df.Subset(idx)}
}

// Records returns the header and rows as strings
func (t Table) Records() [][]string {
	return t.df.Records()
}

func (t Table) String() string {
	return t.df.String()
}
