package highlight

import "math"

// selection is the running state of one ClosestByPixel scan.
type selection struct {
	h    *Highlighter
	x, y float64
	step float64

	cutoff       float64
	bestDistance float64
	best         Highlight
	found        bool
	bestIsLine   bool
}

// policy decides whether candidate c at pixel distance d replaces the
// current best. It must not modify sel; the caller records the winner.
type policy func(sel *selection, c Highlight, d float64) bool

// defaultPolicies returns the selection policy of every SeriesKind.
func defaultPolicies() map[SeriesKind]policy {
	return map[SeriesKind]policy{
		KindLine:  linePolicy,
		KindBar:   barPolicy,
		KindOther: nearestPolicy,
	}
}

// linePolicy gives line points a circular hit area. Inside it a line
// point beats any other kind and only a nearer line point replaces it.
func linePolicy(sel *selection, _ Highlight, d float64) bool {
	if d > sel.h.opts.lineRadius || d >= sel.cutoff {
		return false
	}
	return !sel.bestIsLine || d < sel.bestDistance
}

// nearestPolicy picks the nearest candidate unless a line point has
// already been chosen.
func nearestPolicy(sel *selection, _ Highlight, d float64) bool {
	if d >= sel.bestDistance {
		return false
	}
	return !sel.bestIsLine
}

// barPolicy is nearestPolicy restricted to pointers inside the bar.
func barPolicy(sel *selection, c Highlight, d float64) bool {
	if !nearestPolicy(sel, c, d) {
		return false
	}
	half := sel.step / 2
	if sel.x < c.XPx-half || sel.x > c.XPx+half {
		return false
	}
	return sel.y < sel.h.barBottom(c)
}

// barBottom returns the pixel y of the bottom of the bar behind c: the
// bar's first stacked value at c.X, or the configured fallback.
func (h *Highlighter) barBottom(c Highlight) float64 {
	fallback := h.opts.barBottom(h.chart.Viewport())

	s, _, ok := h.chart.Data().SeriesAt(c.DataSetIndex)
	if !ok {
		return fallback
	}
	e, ok := s.EntryForX(c.X, RoundClosest)
	if !ok {
		return fallback
	}
	base, ok := e.Baseline()
	if !ok {
		return fallback
	}
	t := h.chart.Transformer(s.AxisDependency())
	if t == nil {
		return fallback
	}
	y := t.PixelForValues(c.X, base).Y
	if math.IsNaN(y) {
		return fallback
	}
	return y
}
