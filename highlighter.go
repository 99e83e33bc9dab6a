package highlight

import (
	"context"
	"log/slog"
	"math"
)

// Highlighter maps pointer positions to the data point the user most
// likely means to select.
//
// A Highlighter keeps a candidate buffer that is reused by every query,
// so it is not safe for concurrent use. Use one Highlighter per chart and
// query it from the goroutine that handles that chart's input events.
type Highlighter struct {
	chart    Chart
	opts     options
	policies map[SeriesKind]policy

	// buf holds the candidates of the current query.
	buf []Highlight
}

// NewHighlighter creates a highlighter for chart.
func NewHighlighter(chart Chart, opts ...Option) *Highlighter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Highlighter{
		chart:    chart,
		opts:     o,
		policies: defaultPolicies(),
		buf:      make([]Highlight, 0, o.bufferCap),
	}
}

// MaxHighlightDistance returns the selection cutoff in pixels.
func (h *Highlighter) MaxHighlightDistance() float64 {
	return h.opts.maxDistance
}

func (h *Highlighter) logger() *slog.Logger {
	if h.opts.logger != nil {
		return h.opts.logger
	}
	return Logger()
}

// Locate returns the highlight for a pointer at pixel (x, y).
// ok is false when nothing is close enough to select.
func (h *Highlighter) Locate(x, y float64) (hl Highlight, ok bool) {
	if !Pt(x, y).IsFinite() {
		return Highlight{}, false
	}
	t := h.chart.Transformer(AxisLeft)
	if t == nil {
		h.logger().Warn("highlight: chart has no left axis transformer")
		return Highlight{}, false
	}

	// Any transformer gives the x value; both axes share the x scale.
	xVal := t.ValuesByTouchPoint(x, y).X
	return h.highlightForX(xVal, x, y)
}

// highlightForX resolves the active axis and runs the selector.
func (h *Highlighter) highlightForX(xVal, x, y float64) (Highlight, bool) {
	candidates := h.highlightsAtXValue(xVal)
	if len(candidates) == 0 {
		return Highlight{}, false
	}

	axis := closestAxis(candidates, y)
	hl, ok := h.ClosestByPixel(candidates, x, y, &axis, h.opts.maxDistance)

	if l := h.logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("highlight: locate",
			"x", x, "y", y, "xValue", xVal,
			"candidates", len(candidates),
			"axis", axis.String(),
			"found", ok)
	}
	return hl, ok
}

// HighlightsAtX returns every candidate for the data x value xVal.
// The returned slice is a copy and may be retained by the caller.
func (h *Highlighter) HighlightsAtX(xVal float64) []Highlight {
	candidates := h.highlightsAtXValue(xVal)
	out := make([]Highlight, len(candidates))
	copy(out, candidates)
	return out
}

// highlightsAtXValue fills the candidate buffer for xVal. The result
// aliases h.buf and is only valid until the next query.
func (h *Highlighter) highlightsAtXValue(xVal float64) []Highlight {
	h.buf = h.buf[:0]

	data := h.chart.Data()
	if data == nil {
		return h.buf
	}

	data.each(func(index, group int, s Series) {
		// Series that cannot be highlighted never produce candidates.
		if !s.HighlightEnabled() {
			return
		}
		h.buf = h.buildHighlights(h.buf, s, index, group, xVal)
	})
	return h.buf
}

// buildHighlights appends the candidates of one series at xVal to dst.
// When no entry sits exactly at xVal, all entries at the closest x are used.
func (h *Highlighter) buildHighlights(dst []Highlight, s Series, index, group int, xVal float64) []Highlight {
	entries := s.EntriesForX(xVal)
	if len(entries) == 0 {
		closest, ok := s.EntryForX(xVal, RoundClosest)
		if !ok {
			return dst
		}
		entries = s.EntriesForX(closest.X)
	}
	if len(entries) == 0 {
		return dst
	}

	axis := s.AxisDependency()
	t := h.chart.Transformer(axis)
	if t == nil {
		h.logger().Warn("highlight: no transformer for series axis",
			"series", s.Label(), "axis", axis.String())
		return dst
	}

	for _, e := range entries {
		dst = append(dst, newHighlight(e, t, index, group, axis))
	}
	return dst
}

// minimumDistance returns the smallest vertical pixel distance from pos
// to a candidate on axis, or +Inf if the axis has no candidates.
func minimumDistance(candidates []Highlight, pos float64, axis AxisDependency) float64 {
	d := math.Inf(1)
	for _, c := range candidates {
		if c.Axis != axis {
			continue
		}
		if tmp := math.Abs(c.YPx - pos); tmp < d {
			d = tmp
		}
	}
	return d
}

// closestAxis picks the axis whose candidates are vertically nearest to y.
// Ties go to the left axis.
func closestAxis(candidates []Highlight, y float64) AxisDependency {
	left := minimumDistance(candidates, y, AxisLeft)
	right := minimumDistance(candidates, y, AxisRight)
	if left <= right {
		return AxisLeft
	}
	return AxisRight
}

// ClosestByPixel returns the candidate selected by a pointer at pixel
// (x, y). Only candidates on axis are considered; a nil axis considers
// all of them. Candidates at maxDistance or farther are never chosen.
//
// Line points win within the line hit radius over any other kind. Bars
// are only hit when the pointer lies inside the bar. Other kinds are
// chosen by plain distance.
func (h *Highlighter) ClosestByPixel(candidates []Highlight, x, y float64, axis *AxisDependency, maxDistance float64) (Highlight, bool) {
	sel := selection{
		h:            h,
		x:            x,
		y:            y,
		step:         h.chart.Viewport().StepWidth(),
		bestDistance: maxDistance,
		cutoff:       maxDistance,
	}
	data := h.chart.Data()

	for _, c := range candidates {
		if axis != nil && c.Axis != *axis {
			continue
		}

		kind, _ := data.KindAt(c.DataIndex)
		accept, ok := h.policies[kind]
		if !ok {
			accept = h.policies[KindOther]
		}

		d := distance(x, y, c.XPx, c.YPx)
		if !accept(&sel, c, d) {
			continue
		}

		sel.best = c
		sel.found = true
		sel.bestDistance = d
		sel.bestIsLine = kind == KindLine
	}
	return sel.best, sel.found
}
