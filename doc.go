// Package highlight resolves pointer positions on a chart to data points.
//
// # Overview
//
// A chart can overlay many series drawn with different visual kinds (lines,
// bars, scatter points) against two value axes that share one x axis. Given
// a pointer position in pixels, a Highlighter finds the data point the user
// most likely means:
//
//  1. The pointer x is converted to a data x value.
//  2. Every selectable series contributes the entries at that x, or at
//     its nearest x when nothing matches exactly.
//  3. The value axis whose candidates are vertically nearest the pointer
//     becomes the active axis.
//  4. Candidates on the active axis are filtered by a per-kind policy and
//     the best one is returned.
//
// # Quick Start
//
//	lines := highlight.NewDataSet("temperature", entries)
//	data := highlight.NewCombinedData(highlight.Group{
//	    Kind: highlight.KindLine,
//	    Sets: []highlight.Series{lines},
//	})
//
//	content := highlight.RectWH(40, 20, 600, 400)
//	left, _ := highlight.NewAxisTransformer(content, 0, 10, 0, 100, false)
//	chart, _ := highlight.NewStaticChart(data, highlight.Viewport{
//	    Content: content, XMin: 0, XMax: 10,
//	}, left, nil)
//
//	h := highlight.NewHighlighter(chart)
//	if hl, ok := h.Locate(px, py); ok {
//	    drawMarker(hl.XPx, hl.YPx)
//	}
//
// # Selection Rules
//
// Line points own a circular hit area of [DefaultLineHitRadius] pixels and
// take priority over every other kind. Bars are hit only when the pointer is
// inside the bar: within half a step width of its center and above its
// bottom. Other kinds are chosen by pixel distance. Nothing at or beyond the
// maximum highlight distance is ever selected.
//
// # Coordinate System
//
// Pixel coordinates use a top-left origin with y increasing downwards.
//
// # Concurrency
//
// A Highlighter reuses an internal candidate buffer and must not be used
// from several goroutines at once. Series data must not change during a
// query.
package highlight
