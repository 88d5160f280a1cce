package explore

import "github.com/handiism/bikeshare/internal/model"

// Pager walks the raw rows of a table in fixed-size windows.
type Pager struct {
	table  *model.Table
	size   int
	offset int
}

// NewPager creates a Pager showing size rows at a time. Sizes below one are
// treated as one.
func NewPager(t *model.Table, size int) *Pager {
	return &Pager{table: t, size: max(size, 1)}
}

// Next returns rows [offset, offset+size) clamped to the table and advances
// the offset by size. Past the end it returns an empty page.
func (p *Pager) Next() [][]string {
	n := len(p.table.Records)
	start := min(p.offset, n)
	end := min(p.offset+p.size, n)
	p.offset += p.size
	return p.table.Records[start:end]
}

// Size returns the number of rows per page.
func (p *Pager) Size() int {
	return p.size
}

// Offset returns the index of the first row the next call to Next returns.
func (p *Pager) Offset() int {
	return p.offset
}

// Done reports whether every row has been shown.
func (p *Pager) Done() bool {
	return p.offset >= len(p.table.Records)
}
