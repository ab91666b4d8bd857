package bikeshare

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/theoremus-urban-solutions/bikeshare-stats/stats"
	"github.com/theoremus-urban-solutions/bikeshare-stats/tripdata"
)

const noData = "No data available."

var separator = strings.Repeat("-", 40)

// Reporter writes statistics sections in the terminal report format
type Reporter struct {
	w io.Writer
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Times prints the most frequent times of travel
func (r *Reporter) Times(ts stats.TimeStats, took time.Duration) {
	fmt.Fprint(r.w, "\nCalculating The Most Frequent Times of Travel...\n\n")
	if !ts.Valid {
		fmt.Fprintln(r.w, "No trips match the selected filters.")
	} else {
		fmt.Fprintf(r.w, "Most Common Month: %s (%s)\n", ts.Month.Value, ts.MonthName())
		fmt.Fprintf(r.w, "Most Common Day: %s\n", ts.Weekday.Value)
		fmt.Fprintf(r.w, "Most Common Hour: %s\n", ts.Hour.Value)
	}
	r.footer(took)
}

// Stations prints the most popular stations and trip
func (r *Reporter) Stations(st stats.StationStats, took time.Duration) {
	fmt.Fprint(r.w, "\nCalculating The Most Popular Stations and Trip...\n\n")
	if !st.Valid {
		fmt.Fprintln(r.w, "No trips match the selected filters.")
	} else {
		fmt.Fprintf(r.w, "Most commonly used start station: %s (%d trips)\n", st.Start.Value, st.Start.N)
		fmt.Fprintf(r.w, "Most commonly used end station: %s (%d trips)\n", st.End.Value, st.End.N)
		fmt.Fprintf(r.w, "Most frequent trip: %s -> %s (%d trips)\n", st.Trip.Start, st.Trip.End, st.Trip.N)
	}
	r.footer(took)
}

// Durations prints total and mean travel time
func (r *Reporter) Durations(d stats.DurationStats, took time.Duration) {
	fmt.Fprint(r.w, "\nCalculating Trip Duration...\n\n")
	fmt.Fprintf(r.w, "Trips counted: %d\n", d.Trips)
	fmt.Fprintf(r.w, "Total travel time: %.4f days\n", d.TotalDays)
	if math.IsNaN(d.MeanMinutes) {
		fmt.Fprintln(r.w, "Mean travel time: no trips to average")
	} else {
		fmt.Fprintf(r.w, "Mean travel time: %.4f minutes\n", d.MeanMinutes)
	}
	r.footer(took)
}

// Users prints user type, gender and birth year statistics
func (r *Reporter) Users(us stats.UserStats, took time.Duration) {
	fmt.Fprint(r.w, "\nCalculating User Stats...\n\n")

	fmt.Fprintln(r.w, "User Types:")
	r.counts(us.UserTypes)

	fmt.Fprintln(r.w, "\nGender Types:")
	if us.HasGender {
		r.counts(us.Genders)
	} else {
		fmt.Fprintln(r.w, noData)
	}

	r.year("Earliest Year", us.EarliestBirthYear)
	r.year("Most Recent Year", us.LatestBirthYear)
	r.year("Most Common Year", us.CommonBirthYear)
	r.footer(took)
}

// Page prints one slice of raw trip records starting at row offset from
func (r *Reporter) Page(from int, page tripdata.Table) {
	fmt.Fprintf(r.w, "\nTrips %d to %d:\n", from+1, from+page.Len())
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	for _, rec := range page.Records() {
		fmt.Fprintln(tw, strings.Join(rec, "\t"))
	}
	_ = tw.Flush()
}

func (r *Reporter) counts(counts []stats.Count) {
	if len(counts) == 0 {
		fmt.Fprintln(r.w, noData)
		return
	}
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	for _, c := range counts {
		fmt.Fprintf(tw, "  %s\t%d\n", c.Value, c.N)
	}
	_ = tw.Flush()
}

func (r *Reporter) year(label string, y stats.Year) {
	if !y.Valid {
		fmt.Fprintf(r.w, "\n%s:\n%s\n", label, noData)
		return
	}
	fmt.Fprintf(r.w, "\n%s: %d\n", label, y.Year)
}

func (r *Reporter) footer(took time.Duration) {
	fmt.Fprintf(r.w, "\nThis took %.6f seconds.\n", took.Seconds())
	fmt.Fprintln(r.w, separator)
}
