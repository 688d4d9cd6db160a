package tripdata

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Table is the filtered trip data of one round. It is read-only; reporters
// derive what they need into their own slices.
type Table struct {
	df dataframe.DataFrame
}

// Len returns the number of trips.
func (t *Table) Len() int {
	return t.df.Nrow()
}

// Names returns the column names in file order, derived columns last.
func (t *Table) Names() []string {
	return t.df.Names()
}

// Has reports whether a column exists.
func (t *Table) Has(col string) bool {
	for _, name := range t.df.Names() {
		if name == col {
			return true
		}
	}
	return false
}

// Strings returns the non-missing values of a column as text, in row order.
// The boolean is false when the column does not exist.
func (t *Table) Strings(col string) ([]string, bool) {
	if !t.Has(col) {
		return nil, false
	}
	s := t.df.Col(col)
	out := make([]string, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		elem := s.Elem(i)
		if elem.IsNA() {
			continue
		}
		out = append(out, elem.String())
	}
	return out, true
}

// Values returns every value of a column as text in row order, with
// missing values as empty strings.
func (t *Table) Values(col string) ([]string, bool) {
	if !t.Has(col) {
		return nil, false
	}
	s := t.df.Col(col)
	out := make([]string, s.Len())
	for i := range out {
		elem := s.Elem(i)
		if elem.IsNA() {
			continue
		}
		out[i] = elem.String()
	}
	return out, true
}

// Floats returns the non-missing numeric values of a column, in row order.
func (t *Table) Floats(col string) ([]float64, bool) {
	if !t.Has(col) {
		return nil, false
	}
	s := t.df.Col(col)
	out := make([]float64, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		elem := s.Elem(i)
		if elem.IsNA() {
			continue
		}
		v := elem.Float()
		if math.IsNaN(v) {
			continue
		}
		out = append(out, v)
	}
	return out, true
}

// Ints returns an integer column such as the derived month.
func (t *Table) Ints(col string) ([]int, error) {
	if !t.Has(col) {
		return nil, fmt.Errorf("missing column %q", col)
	}
	return t.df.Col(col).Int()
}

// StartTimes parses the start timestamp of every trip.
func (t *Table) StartTimes() ([]time.Time, error) {
	return parseTimes(t.df.Col(ColStartTime))
}

// Page holds a block of raw rows.
type Page struct {
	Header []string
	Rows   [][]string
}

// Rows returns up to n rows starting at offset. Offsets past the end yield
// an empty page.
func (t *Table) Rows(offset, n int) Page {
	page := Page{Header: t.df.Names()}
	total := t.df.Nrow()
	if offset < 0 {
		offset = 0
	}
	if n <= 0 || offset >= total {
		return page
	}
	end := offset + n
	if end > total {
		end = total
	}
	idx := make([]int, 0, end-offset)
	for i := offset; i < end; i++ {
		idx = append(idx, i)
	}
	sub := t.df.Subset(idx)
	page.Rows = make([][]string, sub.Nrow())
	for r := range page.Rows {
		page.Rows[r] = make([]string, len(page.Header))
	}
	for c, name := range page.Header {
		col := sub.Col(name)
		for r := range page.Rows {
			page.Rows[r][c] = formatElem(col.Elem(r), col.Type())
		}
	}
	return page
}

func formatElem(elem series.Element, t series.Type) string {
	if elem.IsNA() {
		return "NaN"
	}
	if t == series.Float {
		return strconv.FormatFloat(elem.Float(), 'f', -1, 64)
	}
	return elem.String()
}
