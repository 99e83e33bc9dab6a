package highlight

import (
	"math"
	"sort"
)

// AxisDependency associates a series with one of the two value axes.
type AxisDependency uint8

const (
	// AxisLeft is the left value axis.
	AxisLeft AxisDependency = iota
	// AxisRight is the right value axis.
	AxisRight
)

// String returns the axis name.
func (a AxisDependency) String() string {
	switch a {
	case AxisLeft:
		return "left"
	case AxisRight:
		return "right"
	default:
		return "unknown"
	}
}

// Rounding selects which neighbour EntryForX returns when no entry has
// the exact x value.
type Rounding uint8

const (
	// RoundClosest picks the entry with the nearest x. On an exact midpoint
	// the entry with the larger x wins.
	RoundClosest Rounding = iota
	// RoundUp picks the nearest entry with x >= the query.
	RoundUp
	// RoundDown picks the nearest entry with x <= the query.
	RoundDown
)

// Entry is a single data point. YVals holds the stacked values of a
// stacked bar, bottom segment first; it is nil for plain points.
type Entry struct {
	X, Y  float64
	YVals []float64
}

// Baseline returns the first stacked value, if the entry is stacked.
func (e Entry) Baseline() (float64, bool) {
	if len(e.YVals) == 0 {
		return 0, false
	}
	return e.YVals[0], true
}

// Series is the read-only view of one data series used during selection.
type Series interface {
	// Label names the series for diagnostics.
	Label() string

	// HighlightEnabled reports whether the series takes part in selection.
	HighlightEnabled() bool

	// AxisDependency returns the value axis the series is plotted against.
	AxisDependency() AxisDependency

	// EntriesForX returns all entries whose x equals the given value.
	EntriesForX(x float64) []Entry

	// EntryForX returns the entry nearest to x according to rounding.
	EntryForX(x float64, rounding Rounding) (Entry, bool)

	// Len returns the number of entries.
	Len() int
}

// DataSet is an in-memory Series with entries sorted by x.
// A DataSet must not be modified while a Highlighter is querying it.
type DataSet struct {
	label     string
	entries   []Entry
	axis      AxisDependency
	highlight bool
}

// DataSetOption configures a DataSet during creation.
type DataSetOption func(*DataSet)

// WithAxis plots the data set against the given value axis.
func WithAxis(axis AxisDependency) DataSetOption {
	return func(d *DataSet) {
		d.axis = axis
	}
}

// WithHighlightEnabled enables or disables selection of the data set.
// Data sets are selectable by default.
func WithHighlightEnabled(enabled bool) DataSetOption {
	return func(d *DataSet) {
		d.highlight = enabled
	}
}

// NewDataSet creates a data set from entries. The slice is copied and
// sorted by x; entries sharing an x keep their relative order.
func NewDataSet(label string, entries []Entry, opts ...DataSetOption) *DataSet {
	d := &DataSet{
		label:     label,
		entries:   append([]Entry(nil), entries...),
		axis:      AxisLeft,
		highlight: true,
	}
	for _, opt := range opts {
		opt(d)
	}
	sort.SliceStable(d.entries, func(i, j int) bool {
		return d.entries[i].X < d.entries[j].X
	})
	return d
}

// Label implements Series.
func (d *DataSet) Label() string { return d.label }

// HighlightEnabled implements Series.
func (d *DataSet) HighlightEnabled() bool { return d.highlight }

// SetHighlightEnabled toggles selection of the data set.
func (d *DataSet) SetHighlightEnabled(enabled bool) { d.highlight = enabled }

// AxisDependency implements Series.
func (d *DataSet) AxisDependency() AxisDependency { return d.axis }

// Len implements Series.
func (d *DataSet) Len() int { return len(d.entries) }

// Entry returns the i-th entry in x order.
func (d *DataSet) Entry(i int) Entry { return d.entries[i] }

// XBounds returns the smallest and largest x. ok is false for an empty set.
func (d *DataSet) XBounds() (lo, hi float64, ok bool) {
	if len(d.entries) == 0 {
		return 0, 0, false
	}
	return d.entries[0].X, d.entries[len(d.entries)-1].X, true
}

// EntriesForX implements Series.
func (d *DataSet) EntriesForX(x float64) []Entry {
	lo := sort.Search(len(d.entries), func(i int) bool {
		return d.entries[i].X >= x
	})
	hi := lo
	for hi < len(d.entries) && d.entries[hi].X == x {
		hi++
	}
	if lo == hi {
		return nil
	}
	return d.entries[lo:hi:hi]
}

// EntryForX implements Series.
func (d *DataSet) EntryForX(x float64, rounding Rounding) (Entry, bool) {
	i := d.entryIndex(x, rounding)
	if i < 0 {
		return Entry{}, false
	}
	return d.entries[i], true
}

// entryIndex returns the index of the first entry at the rounded x, or -1.
func (d *DataSet) entryIndex(x float64, rounding Rounding) int {
	n := len(d.entries)
	if n == 0 || math.IsNaN(x) {
		return -1
	}

	// up is the first entry with X >= x.
	up := sort.Search(n, func(i int) bool {
		return d.entries[i].X >= x
	})
	if up < n && d.entries[up].X == x {
		return up
	}

	down := up - 1
	if down >= 0 {
		// Move to the first entry sharing that x.
		dx := d.entries[down].X
		for down > 0 && d.entries[down-1].X == dx {
			down--
		}
	}

	switch rounding {
	case RoundUp:
		if up == n {
			return -1
		}
		return up
	case RoundDown:
		return down
	default:
		switch {
		case up == n:
			return down
		case down < 0:
			return up
		case d.entries[up].X-x <= x-d.entries[down].X:
			return up
		default:
			return down
		}
	}
}
