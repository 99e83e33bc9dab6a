// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gochart adapts charts laid out by github.com/wcharczuk/go-chart/v2
// for use with package highlight.
//
// go-chart maps values to pixels with a Range per axis and a canvas Box:
//
//	px = canvas.Left   + xrange.Translate(x)
//	py = canvas.Bottom - yrange.Translate(y)
//
// Transformer reproduces that mapping, without rounding to whole pixels, and
// its inverse, so a Highlighter can resolve pointer positions on an image
// rendered by go-chart.
//
// # Usage
//
//	xr := &chart.ContinuousRange{Min: 0, Max: 10, Domain: canvas.Width()}
//	yr := &chart.ContinuousRange{Min: 0, Max: 100, Domain: canvas.Height()}
//	left := gochart.NewTransformer(canvas, xr, yr)
//
//	c, err := highlight.NewStaticChart(data, gochart.Viewport(canvas, xr), left, nil)
package gochart
