package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/theoremus-urban-solutions/bikeshare-stats/tripdata"
)

const (
	secondsPerDay    = 86400
	secondsPerMinute = 60
)

// DurationStats holds total and mean trip duration
type DurationStats struct {
	Trips     int
	TotalDays float64
	// MeanMinutes is NaN when there are no trips
	MeanMinutes float64
}

// Durations sums and averages Trip Duration. Missing durations are skipped.
func Durations(t tripdata.Table) DurationStats {
	d := present(t.Frame().Col(tripdata.ColTripDuration))
	if d.Len() == 0 {
		return DurationStats{MeanMinutes: math.NaN()}
	}
	return DurationStats{
		Trips:       d.Len(),
		TotalDays:   floats.Sum(d.Float()) / secondsPerDay,
		MeanMinutes: d.Mean() / secondsPerMinute,
	}
}
