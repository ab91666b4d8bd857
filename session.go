package bikeshare

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/theoremus-urban-solutions/bikeshare-stats/config"
	"github.com/theoremus-urban-solutions/bikeshare-stats/filters"
	"github.com/theoremus-urban-solutions/bikeshare-stats/stats"
	"github.com/theoremus-urban-solutions/bikeshare-stats/tripdata"
)

// State is a step of the interactive session
type State int

const (
	StatePrompting State = iota
	StateLoading
	StateReporting
	StatePaging
	StateRestart
	StateExit
)

var stateNames = map[State]string{
	StatePrompting: "prompting",
	StateLoading:   "loading",
	StateReporting: "reporting",
	StatePaging:    "paging",
	StateRestart:   "restart",
	StateExit:      "exit",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

const (
	monthQuestion   = "Which month do you want to see data for? Please use January, February, March, April, May or June. Type 'all' for no filter."
	monthRetry      = "Please use the specified months, or type all."
	dayQuestion     = "Which day would you like to see data for? Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday or type 'all' for no filter."
	dayRetry        = "Please use the specified days, or type all."
	rawQuestion     = "Would you like to see some raw data? Enter y/n."
	restartQuestion = "Would you like to restart? Enter yes or no."
)

// Session drives the prompt, load, report, page and restart loop
type Session struct {
	cfg      config.AppConfig
	loader   *tripdata.Loader
	prompter *Prompter
	reporter *Reporter
	out      io.Writer
	id       string
}

// NewSession wires a session over cfg, reading answers from in and writing
// the report to out.
func NewSession(cfg config.AppConfig, in io.Reader, out io.Writer) *Session {
	return &Session{
		cfg:      cfg,
		loader:   tripdata.NewLoader(cfg.Data.Dir, cfg.CityFiles()),
		prompter: NewPrompter(in, out),
		reporter: NewReporter(out),
		out:      out,
	}
}

// Run loops until the user declines to restart or input ends. Input ending
// is not an error.
func (s *Session) Run(ctx context.Context) error {
	var (
		sel   filters.Selection
		table tripdata.Table
	)
	state := StatePrompting
	for state != StateExit {
		if err := ctx.Err(); err != nil {
			return err
		}

		var err error
		next := state
		switch state {
		case StatePrompting:
			s.id = uuid.NewString()
			sel, err = s.Filters()
			next = StateLoading
		case StateLoading:
			table, err = s.loader.Load(sel)
			next = StateReporting
		case StateReporting:
			s.Report(table)
			next = StatePaging
		case StatePaging:
			err = s.Page(table)
			next = StateRestart
		case StateRestart:
			var again bool
			again, err = s.prompter.Confirm(restartQuestion)
			next = StateExit
			if again {
				next = StatePrompting
			}
		}

		if errors.Is(err, io.EOF) {
			log.Printf("session %s: input closed while %s", s.id, state)
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", state, err)
		}
		log.Printf("session %s: %s -> %s", s.id, state, next)
		state = next
	}
	return nil
}

// Filters asks for the city, month and day to analyze.
func (s *Session) Filters() (filters.Selection, error) {
	fmt.Fprintln(s.out, "\nHello! Let's explore some US bikeshare data!")

	cities := s.cfg.CityNames()
	city, err := s.prompter.Ask(cityQuestion(cities), "Please try again, using the specified city names.",
		func(in string) (string, error) { return filters.ParseCity(in, cities) })
	if err != nil {
		return filters.Selection{}, err
	}
	month, err := s.prompter.Ask(monthQuestion, monthRetry, filters.ParseMonth)
	if err != nil {
		return filters.Selection{}, err
	}
	day, err := s.prompter.Ask(dayQuestion, dayRetry, filters.ParseDay)
	if err != nil {
		return filters.Selection{}, err
	}

	sel := filters.Selection{City: city, Month: month, Day: day}
	log.Printf("session %s: %s", s.id, sel)
	fmt.Fprintln(s.out, separator)
	return sel, nil
}

// Report runs every aggregator over table and prints the results.
func (s *Session) Report(table tripdata.Table) {
	start := time.Now()
	ts := stats.Times(table)
	s.reporter.Times(ts, time.Since(start))

	start = time.Now()
	st := stats.Stations(table)
	s.reporter.Stations(st, time.Since(start))

	start = time.Now()
	d := stats.Durations(table)
	s.reporter.Durations(d, time.Since(start))

	start = time.Now()
	us := stats.Users(table)
	s.reporter.Users(us, time.Since(start))
}

// Page offers raw rows page by page until the user declines or rows run out.
func (s *Session) Page(table tripdata.Table) error {
	pager := NewPager(table, s.cfg.Pager.Rows)
	for {
		more, err := s.prompter.Confirm(rawQuestion)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		from := pager.Cursor()
		page, ok := pager.Next()
		if !ok {
			fmt.Fprintln(s.out, "No more raw data to display.")
			return nil
		}
		s.reporter.Page(from, page)
	}
}

func cityQuestion(cities []string) string {
	title := cases.Title(language.English)
	names := make([]string, len(cities))
	for i, c := range cities {
		names[i] = title.String(c)
	}
	switch len(names) {
	case 0:
		return "No cities are configured."
	case 1:
		return fmt.Sprintf("Select %s for your analysis.", names[0])
	}
	return fmt.Sprintf("Select %s or %s for your analysis.",
		strings.Join(names[:len(names)-1], ", "), names[len(names)-1])
}
