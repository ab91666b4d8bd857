package stats

import (
	"cmp"
	"slices"

	"github.com/theoremus-urban-solutions/bikeshare-stats/tripdata"
)

// Trip is a start and end station pair with its number of trips
type Trip struct {
	Start string
	End   string
	N     int
}

// StationStats holds the most popular stations and trip
type StationStats struct {
	Start Count
	End   Count
	Trip  Trip
	Valid bool
}

// Stations computes the most used start station, end station and trip.
func Stations(t tripdata.Table) StationStats {
	df := t.Frame()
	start, ok := Mode(df.Col(tripdata.ColStartStation))
	if !ok {
		return StationStats{}
	}
	end, _ := Mode(df.Col(tripdata.ColEndStation))
	return StationStats{
		Start: start,
		End:   end,
		Trip:  popularTrip(t),
		Valid: true,
	}
}

func popularTrip(t tripdata.Table) Trip {
	df := t.Frame()
	starts := df.Col(tripdata.ColStartStation)
	ends := df.Col(tripdata.ColEndStation)

	type pair struct{ start, end string }
	counts := make(map[pair]int)
	for i := 0; i < starts.Len(); i++ {
		s, e := starts.Elem(i), ends.Elem(i)
		if s.IsNA() || e.IsNA() {
			continue
		}
		counts[pair{s.String(), e.String()}]++
	}

	trips := make([]Trip, 0, len(counts))
	for p, n := range counts {
		trips = append(trips, Trip{Start: p.start, End: p.end, N: n})
	}
	if len(trips) == 0 {
		return Trip{}
	}
	slices.SortFunc(trips, func(a, b Trip) int {
		return cmp.Or(
			cmp.Compare(b.N, a.N),
			cmp.Compare(a.Start, b.Start),
			cmp.Compare(a.End, b.End),
		)
	})
	return trips[0]
}
