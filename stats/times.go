package stats

import (
	"strconv"
	"time"

	"github.com/theoremus-urban-solutions/bikeshare-stats/tripdata"
)

// TimeStats holds the most frequent times of travel
type TimeStats struct {
	Month   Count
	Weekday Count
	Hour    Count
	// Valid is false for an empty table
	Valid bool
}

// MonthName returns the English name of the most common month
func (ts TimeStats) MonthName() string {
	n, err := strconv.Atoi(ts.Month.Value)
	if err != nil || n < 1 || n > 12 {
		return ""
	}
	return time.Month(n).String()
}

// Times computes the most common month, weekday and start hour.
func Times(t tripdata.Table) TimeStats {
	df := t.Frame()
	month, ok := Mode(df.Col(tripdata.ColMonth))
	if !ok {
		return TimeStats{}
	}
	weekday, _ := Mode(df.Col(tripdata.ColWeekday))
	hour, _ := Mode(df.Col(tripdata.ColHour))
	return TimeStats{Month: month, Weekday: weekday, Hour: hour, Valid: true}
}
