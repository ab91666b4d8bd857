package tripdata_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/bikeshare-stats/filters"
	"github.com/theoremus-urban-solutions/bikeshare-stats/internal/testutil"
	"github.com/theoremus-urban-solutions/bikeshare-stats/tripdata"
)

func loadChicago(t *testing.T) tripdata.Table {
	t.Helper()
	table, err := tripdata.ReadFile(testutil.Fixture(t, "chicago.csv"))
	require.NoError(t, err)
	return table
}

func TestFilter(t *testing.T) {
	all := loadChicago(t)

	tests := []struct {
		name      string
		month     string
		day       string
		wantRows  int
		wantMonth int
		wantDay   string
	}{
		{name: "no filter", month: filters.All, day: filters.All, wantRows: 12},
		{name: "january", month: "january", day: filters.All, wantRows: 4, wantMonth: 1},
		{name: "june", month: "june", day: filters.All, wantRows: 3, wantMonth: 6},
		{name: "mondays", month: filters.All, day: "monday", wantRows: 7, wantDay: "Monday"},
		{name: "january mondays", month: "january", day: "monday", wantRows: 2, wantMonth: 1, wantDay: "Monday"},
		{name: "march tuesdays", month: "march", day: "tuesday", wantRows: 1, wantMonth: 3, wantDay: "Tuesday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tripdata.Filter(all, filters.Selection{City: "chicago", Month: tt.month, Day: tt.day})
			require.NoError(t, err)
			require.Equal(t, tt.wantRows, got.Len())

			if tt.wantMonth != 0 {
				months, err := got.Frame().Col(tripdata.ColMonth).Int()
				require.NoError(t, err)
				for _, m := range months {
					require.Equal(t, tt.wantMonth, m)
				}
			}
			if tt.wantDay != "" {
				for _, d := range got.Frame().Col(tripdata.ColWeekday).Records() {
					require.Equal(t, tt.wantDay, d)
				}
			}
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	all := loadChicago(t)
	sel := filters.Selection{City: "chicago", Month: "january", Day: "monday"}

	once, err := tripdata.Filter(all, sel)
	require.NoError(t, err)
	twice, err := tripdata.Filter(once, sel)
	require.NoError(t, err)

	if diff := cmp.Diff(once.Records(), twice.Records()); diff != "" {
		t.Errorf("filtering twice changed the table (-once +twice):\n%s", diff)
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	all := loadChicago(t)
	before := all.Records()

	_, err := tripdata.Filter(all, filters.Selection{City: "chicago", Month: "june", Day: "saturday"})
	require.NoError(t, err)

	if diff := cmp.Diff(before, all.Records()); diff != "" {
		t.Errorf("input table changed (-before +after):\n%s", diff)
	}
}

func TestFilter_InvalidMonth(t *testing.T) {
	_, err := tripdata.Filter(loadChicago(t), filters.Selection{City: "chicago", Month: "july", Day: filters.All})
	require.ErrorIs(t, err, filters.ErrInvalidMonth)
}

func TestLoader_ChicagoJanuary(t *testing.T) {
	table, err := newLoader(t).Load(filters.Selection{City: "chicago", Month: "january", Day: filters.All})
	require.NoError(t, err)
	require.Equal(t, 4, table.Len())

	for _, ts := range table.Frame().Col(tripdata.ColStartTime).Records() {
		parsed, err := tripdata.ParseTimestamp(ts)
		require.NoError(t, err)
		require.Equal(t, 1, int(parsed.Month()))
	}
}
