// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gochart

import (
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/gogpu/highlight"
)

// Transformer is a highlight.Transformer for one go-chart value axis.
// It follows Range.Translate but keeps fractional pixels, so positions
// round-trip exactly through ValuesByTouchPoint.
type Transformer struct {
	canvas chart.Box
	xr, yr chart.Range
}

// NewTransformer creates the transform for values plotted on canvas
// with the given x and y ranges. The ranges' domains must already be set,
// as go-chart does while laying out a chart.
func NewTransformer(canvas chart.Box, xr, yr chart.Range) *Transformer {
	return &Transformer{canvas: canvas, xr: xr, yr: yr}
}

// PixelForValues implements highlight.Transformer.
func (t *Transformer) PixelForValues(x, y float64) highlight.Point {
	return highlight.Pt(
		float64(t.canvas.Left)+translate(t.xr, x),
		float64(t.canvas.Bottom)-translate(t.yr, y),
	)
}

// translate is Range.Translate without rounding to whole pixels.
func translate(r chart.Range, value float64) float64 {
	delta := r.GetDelta()
	if delta == 0 {
		return 0
	}
	domain := float64(r.GetDomain())
	ratio := (value - r.GetMin()) / delta
	if r.IsDescending() {
		return domain - ratio*domain
	}
	return ratio * domain
}

// ValuesByTouchPoint implements highlight.Transformer.
func (t *Transformer) ValuesByTouchPoint(px, py float64) highlight.Point {
	return highlight.Pt(
		untranslate(t.xr, px-float64(t.canvas.Left)),
		untranslate(t.yr, float64(t.canvas.Bottom)-py),
	)
}

// untranslate inverts Range.Translate for a pixel offset into the domain.
func untranslate(r chart.Range, offset float64) float64 {
	domain := float64(r.GetDomain())
	if domain == 0 {
		return r.GetMin()
	}
	ratio := offset / domain
	if r.IsDescending() {
		ratio = 1 - ratio
	}
	return r.GetMin() + ratio*r.GetDelta()
}

// Viewport returns the highlight viewport of a go-chart canvas showing xr.
func Viewport(canvas chart.Box, xr chart.Range) highlight.Viewport {
	return highlight.Viewport{
		Content: highlight.NewRect(
			highlight.Pt(float64(canvas.Left), float64(canvas.Top)),
			highlight.Pt(float64(canvas.Right), float64(canvas.Bottom)),
		),
		XMin:      xr.GetMin(),
		XMax:      xr.GetMax(),
		YChartMin: float64(canvas.Top),
	}
}
