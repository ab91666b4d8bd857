package filters

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var cities = []string{"chicago", "new york city", "washington"}

func TestParseCity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "lower case", input: "chicago", want: "chicago"},
		{name: "mixed case with spaces", input: "  New York City ", want: "new york city"},
		{name: "upper case", input: "WASHINGTON", want: "washington"},
		{name: "unknown", input: "boston", wantErr: true},
		{name: "partial", input: "new york", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCity(tt.input, cities)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidCity)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseMonth(t *testing.T) {
	for _, m := range Months {
		got, err := ParseMonth(m)
		require.NoError(t, err)
		require.Equal(t, m, got)
	}

	got, err := ParseMonth("ALL")
	require.NoError(t, err)
	require.Equal(t, All, got)

	got, err = ParseMonth(" March")
	require.NoError(t, err)
	require.Equal(t, "march", got)

	for _, bad := range []string{"july", "december", "jan", "1", ""} {
		_, err := ParseMonth(bad)
		require.ErrorIs(t, err, ErrInvalidMonth, bad)
	}
}

func TestParseDay(t *testing.T) {
	for _, d := range Days {
		got, err := ParseDay(d)
		require.NoError(t, err)
		require.Equal(t, d, got)
	}

	got, err := ParseDay("Saturday")
	require.NoError(t, err)
	require.Equal(t, "saturday", got)

	got, err = ParseDay("all")
	require.NoError(t, err)
	require.Equal(t, All, got)

	for _, bad := range []string{"sun", "weekend", "funday", ""} {
		_, err := ParseDay(bad)
		require.ErrorIs(t, err, ErrInvalidDay, bad)
	}
}

func TestMonthNumber(t *testing.T) {
	require.Equal(t, 1, MonthNumber("january"))
	require.Equal(t, 6, MonthNumber("June"))
	require.Equal(t, 0, MonthNumber("july"))
	require.Equal(t, 0, MonthNumber(All))
}
