package tripdata

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/theoremus-urban-solutions/bikeshare-stats/filters"
)

var (
	ErrUnknownCity   = errors.New("unknown city")
	ErrMissingColumn = errors.New("missing column")
	ErrBadTimestamp  = errors.New("bad start timestamp")
)

var timestampLayouts = []string{"2006-01-02 15:04:05", "2006-01-02T15:04:05"}

var columnTypes = map[string]series.Type{
	ColTripDuration: series.Float,
	ColBirthYear:    series.Float,
}

var missingValues = []string{"", "NA", "NaN", "nan", "<nil>"}

// Loader resolves a city to its trip file and loads it
type Loader struct {
	dir   string
	files map[string]string
}

// NewLoader creates a loader over the given city to file mapping.
// Relative file names are resolved against dir.
func NewLoader(dir string, files map[string]string) *Loader {
	return &Loader{dir: dir, files: files}
}

// Path returns the trip file for city
func (l *Loader) Path(city string) (string, error) {
	name, ok := l.files[city]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCity, city)
	}
	if filepath.IsAbs(name) || l.dir == "" {
		return name, nil
	}
	return filepath.Join(l.dir, name), nil
}

// Load reads the selected city's trips and applies the month and day filters.
func (l *Loader) Load(sel filters.Selection) (Table, error) {
	start := time.Now()
	path, err := l.Path(sel.City)
	if err != nil {
		return Table{}, err
	}
	all, err := ReadFile(path)
	if err != nil {
		return Table{}, err
	}
	filtered, err := Filter(all, sel)
	if err != nil {
		return Table{}, err
	}
	log.Printf("loaded %s: %d trips, %d after filter (%s) in %s",
		path, all.Len(), filtered.Len(), sel, time.Since(start))
	return filtered, nil
}

// ReadFile opens path and reads it with Read.
func ReadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open trip file: %w", err)
	}
	defer func() { _ = f.Close() }()

	t, err := Read(f)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Read loads trip records from CSV and adds the derived time columns.
func Read(r io.Reader) (Table, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(columnTypes),
		dataframe.NaNValues(missingValues),
	)
	if df.Err != nil {
		return Table{}, fmt.Errorf("read trips: %w", df.Err)
	}

	t := NewTable(df)
	for _, col := range RequiredColumns {
		if !t.Has(col) {
			return Table{}, fmt.Errorf("%w: %q", ErrMissingColumn, col)
		}
	}
	return derive(t)
}

// derive appends month, day_of_week and hour computed from Start Time
func derive(t Table) (Table, error) {
	start := t.df.Col(ColStartTime)
	n := start.Len()
	months := make([]int, n)
	weekdays := make([]string, n)
	hours := make([]int, n)
	for i := 0; i < n; i++ {
		el := start.Elem(i)
		if el.IsNA() {
			return Table{}, fmt.Errorf("%w: row %d is empty", ErrBadTimestamp, i+1)
		}
		ts, err := ParseTimestamp(el.String())
		if err != nil {
			return Table{}, fmt.Errorf("%w: row %d: %v", ErrBadTimestamp, i+1, err)
		}
		months[i] = int(ts.Month())
		weekdays[i] = ts.Weekday().String()
		hours[i] = ts.Hour()
	}

	df := t.df.
		Mutate(series.New(months, series.Int, ColMonth)).
		Mutate(series.New(weekdays, series.String, ColWeekday)).
		Mutate(series.New(hours, series.Int, ColHour))
	if df.Err != nil {
		return Table{}, fmt.Errorf("derive time columns: %w", df.Err)
	}
	return NewTable(df), nil
}

// ParseTimestamp parses a Start Time value
func ParseTimestamp(s string) (time.Time, error) {
	var err error
	for _, layout := range timestampLayouts {
		var ts time.Time
		ts, err = time.Parse(layout, s)
		if err == nil {
			return ts, nil
		}
	}
	return time.Time{}, err
}
