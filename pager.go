package bikeshare

import (
	"github.com/theoremus-urban-solutions/bikeshare-stats/config"
	"github.com/theoremus-urban-solutions/bikeshare-stats/tripdata"
)

// Pager hands out successive fixed-size slices of a table
type Pager struct {
	table  tripdata.Table
	rows   int
	cursor int
}

// NewPager starts a pager at the first row. rows <= 0 uses the default page size.
func NewPager(t tripdata.Table, rows int) *Pager {
	if rows <= 0 {
		rows = config.DefaultPagerRows
	}
	return &Pager{table: t, rows: rows}
}

// Next returns rows [cursor, cursor+rows) and advances the cursor.
// The last page may be shorter; false means no rows are left.
func (p *Pager) Next() (tripdata.Table, bool) {
	if p.cursor >= p.table.Len() {
		return tripdata.Table{}, false
	}
	page := p.table.Slice(p.cursor, p.cursor+p.rows)
	p.cursor += p.rows
	return page, true
}

// Cursor is the offset of the next page
func (p *Pager) Cursor() int {
	return p.cursor
}
