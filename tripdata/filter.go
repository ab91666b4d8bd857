package tripdata

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/theoremus-urban-solutions/bikeshare-stats/filters"
)

// Filter keeps the rows matching the selection's month and day. "all"
// disables the corresponding predicate. The input table is not modified.
func Filter(t Table, sel filters.Selection) (Table, error) {
	df := t.df
	if sel.Month != "" && sel.Month != filters.All {
		n := filters.MonthNumber(sel.Month)
		if n == 0 {
			return Table{}, fmt.Errorf("%w: %q", filters.ErrInvalidMonth, sel.Month)
		}
		df = df.Filter(dataframe.F{Colname: ColMonth, Comparator: series.Eq, Comparando: n})
	}
	if sel.Day != "" && sel.Day != filters.All {
		df = df.Filter(dataframe.F{Colname: ColWeekday, Comparator: series.Eq, Comparando: cases.Title(language.English).String(sel.Day)})
	}
	if df.Err != nil {
		return Table{}, fmt.Errorf("filter trips: %w", df.Err)
	}
	return NewTable(df), nil
}
