package highlight

import "math"

// SeriesKind is the visual encoding of a group of series. The set is
// closed; selection policy is looked up by kind.
type SeriesKind uint8

const (
	// KindOther covers point-based encodings without special hit rules
	// (scatter, candle, bubble) and unknown groups.
	KindOther SeriesKind = iota
	// KindLine is a continuous line through its points.
	KindLine
	// KindBar is a filled bar from a baseline up to its value.
	KindBar
)

// String returns the kind name.
func (k SeriesKind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindBar:
		return "bar"
	default:
		return "other"
	}
}

// Group is a collection of series drawn with the same visual kind,
// such as all bar series of a combined chart.
type Group struct {
	Kind SeriesKind
	Sets []Series
}

// CombinedData overlays several groups in one chart. Series are
// addressed by a global index in group order, then series order.
type CombinedData struct {
	groups []Group
}

// NewCombinedData creates the chart data from groups in drawing order.
func NewCombinedData(groups ...Group) *CombinedData {
	return &CombinedData{groups: append([]Group(nil), groups...)}
}

// AddGroup appends a group and returns its index.
func (c *CombinedData) AddGroup(kind SeriesKind, sets ...Series) int {
	c.groups = append(c.groups, Group{Kind: kind, Sets: sets})
	return len(c.groups) - 1
}

// GroupCount returns the number of groups.
func (c *CombinedData) GroupCount() int {
	return len(c.groups)
}

// Group returns the group at index i.
func (c *CombinedData) Group(i int) Group {
	return c.groups[i]
}

// KindAt classifies the group at index i. ok is false when the index
// does not name a group.
func (c *CombinedData) KindAt(i int) (kind SeriesKind, ok bool) {
	if c == nil || i < 0 || i >= len(c.groups) {
		return KindOther, false
	}
	return c.groups[i].Kind, true
}

// SeriesCount returns the total number of series across groups.
func (c *CombinedData) SeriesCount() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, g := range c.groups {
		n += len(g.Sets)
	}
	return n
}

// SeriesAt returns the series with global index i and the index of the
// group owning it. ok is false when i is out of range.
func (c *CombinedData) SeriesAt(i int) (s Series, group int, ok bool) {
	if c == nil || i < 0 {
		return nil, -1, false
	}
	for gi, g := range c.groups {
		if i < len(g.Sets) {
			return g.Sets[i], gi, true
		}
		i -= len(g.Sets)
	}
	return nil, -1, false
}

// each calls fn for every series with its global and group index.
func (c *CombinedData) each(fn func(index, group int, s Series)) {
	if c == nil {
		return
	}
	index := 0
	for gi, g := range c.groups {
		for _, s := range g.Sets {
			fn(index, gi, s)
			index++
		}
	}
}

// XBounds returns the x extent over all DataSet series.
func (c *CombinedData) XBounds() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	c.each(func(_, _ int, s Series) {
		ds, isSet := s.(*DataSet)
		if !isSet {
			return
		}
		if l, h, has := ds.XBounds(); has {
			lo = math.Min(lo, l)
			hi = math.Max(hi, h)
			ok = true
		}
	})
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}
