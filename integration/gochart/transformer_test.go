// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gochart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/gogpu/highlight"
)

func testCanvas() (chart.Box, *chart.ContinuousRange, *chart.ContinuousRange) {
	canvas := chart.Box{Top: 20, Left: 40, Right: 640, Bottom: 420}
	xr := &chart.ContinuousRange{Min: 0, Max: 10, Domain: 600}
	yr := &chart.ContinuousRange{Min: 0, Max: 100, Domain: 400}
	return canvas, xr, yr
}

func TestTransformerPixelForValues(t *testing.T) {
	canvas, xr, yr := testCanvas()
	tr := NewTransformer(canvas, xr, yr)

	assert.Equal(t, highlight.Pt(40, 420), tr.PixelForValues(0, 0))
	assert.Equal(t, highlight.Pt(340, 220), tr.PixelForValues(5, 50))
	assert.Equal(t, highlight.Pt(640, 20), tr.PixelForValues(10, 100))
}

func TestTransformerRoundTrip(t *testing.T) {
	canvas, xr, yr := testCanvas()
	tr := NewTransformer(canvas, xr, yr)

	v := tr.ValuesByTouchPoint(340, 220)
	assert.InDelta(t, 5, v.X, 1e-9)
	assert.InDelta(t, 50, v.Y, 1e-9)

	// One pixel is 1/60 of an x unit.
	v = tr.ValuesByTouchPoint(341, 220)
	assert.InDelta(t, 5+1.0/60, v.X, 1e-9)
}

func TestTransformerKeepsFractionalPixels(t *testing.T) {
	canvas, xr, yr := testCanvas()
	tr := NewTransformer(canvas, xr, yr)

	// 5.01 is 300.6px into the domain; Translate would report 301.
	assert.Equal(t, 301, xr.Translate(5.01))
	p := tr.PixelForValues(5.01, 50)
	assert.InDelta(t, 340.6, p.X, 1e-9)

	v := tr.ValuesByTouchPoint(p.X, p.Y)
	assert.InDelta(t, 5.01, v.X, 1e-9)
	assert.InDelta(t, 50, v.Y, 1e-9)
}

func TestTranslateDescendingAndEmpty(t *testing.T) {
	desc := &chart.ContinuousRange{Min: 0, Max: 10, Domain: 100, Descending: true}
	assert.InDelta(t, 100, translate(desc, 0), 1e-9)
	assert.InDelta(t, 0, translate(desc, 10), 1e-9)
	assert.InDelta(t, float64(desc.Translate(2.5)), translate(desc, 2.5), 1e-9)

	flat := &chart.ContinuousRange{Min: 3, Max: 3, Domain: 100}
	assert.Equal(t, 0.0, translate(flat, 7))
}

func TestUntranslateDescendingAndEmpty(t *testing.T) {
	desc := &chart.ContinuousRange{Min: 0, Max: 10, Domain: 100, Descending: true}
	assert.InDelta(t, 10, untranslate(desc, 0), 1e-9)
	assert.InDelta(t, 0, untranslate(desc, 100), 1e-9)

	empty := &chart.ContinuousRange{Min: 3, Max: 10}
	assert.Equal(t, 3.0, untranslate(empty, 50))
}

func TestHighlighterOnGoChartCanvas(t *testing.T) {
	canvas, xr, yr := testCanvas()
	tr := NewTransformer(canvas, xr, yr)

	vp := Viewport(canvas, xr)
	assert.Equal(t, 600.0, vp.Width())
	assert.Equal(t, 60.0, vp.StepWidth())

	line := highlight.NewDataSet("rtt", []highlight.Entry{{X: 4, Y: 30}, {X: 5, Y: 50}, {X: 6, Y: 40}})
	data := highlight.NewCombinedData(highlight.Group{Kind: highlight.KindLine, Sets: []highlight.Series{line}})
	c, err := highlight.NewStaticChart(data, vp, tr, nil)
	require.NoError(t, err)

	hl, ok := highlight.NewHighlighter(c).Locate(345, 225)
	require.True(t, ok)
	assert.Equal(t, 5.0, hl.X)
	assert.Equal(t, 340.0, hl.XPx)
	assert.Equal(t, 220.0, hl.YPx)
}
