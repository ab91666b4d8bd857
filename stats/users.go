package stats

import (
	"strconv"

	"github.com/theoremus-urban-solutions/bikeshare-stats/tripdata"
)

// Year is an optional birth year
type Year struct {
	Year  int
	Valid bool
}

// UserStats holds user type, gender and birth year statistics.
// Gender and each birth year figure are only set when the source carries them.
type UserStats struct {
	UserTypes []Count

	Genders   []Count
	HasGender bool

	EarliestBirthYear Year
	LatestBirthYear   Year
	CommonBirthYear   Year
}

// Users computes user demographics.
func Users(t tripdata.Table) UserStats {
	us := UserStats{UserTypes: ValueCounts(t.Frame().Col(tripdata.ColUserType))}

	if gender, ok := t.Column(tripdata.ColGender); ok {
		us.Genders = ValueCounts(gender)
		us.HasGender = true
	}

	us.EarliestBirthYear = earliestBirthYear(t)
	us.LatestBirthYear = latestBirthYear(t)
	us.CommonBirthYear = commonBirthYear(t)
	return us
}

func earliestBirthYear(t tripdata.Table) Year {
	col, ok := t.Column(tripdata.ColBirthYear)
	if !ok {
		return Year{}
	}
	p := present(col)
	if p.Len() == 0 {
		return Year{}
	}
	return Year{Year: int(p.Min()), Valid: true}
}

func latestBirthYear(t tripdata.Table) Year {
	col, ok := t.Column(tripdata.ColBirthYear)
	if !ok {
		return Year{}
	}
	p := present(col)
	if p.Len() == 0 {
		return Year{}
	}
	return Year{Year: int(p.Max()), Valid: true}
}

func commonBirthYear(t tripdata.Table) Year {
	col, ok := t.Column(tripdata.ColBirthYear)
	if !ok {
		return Year{}
	}
	mode, ok := Mode(col)
	if !ok {
		return Year{}
	}
	y, err := strconv.ParseFloat(mode.Value, 64)
	if err != nil {
		return Year{}
	}
	return Year{Year: int(y), Valid: true}
}
