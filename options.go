package highlight

import "log/slog"

const (
	// MinimumTargetSize is the smallest comfortable touch target diameter.
	MinimumTargetSize = 44.0

	// DefaultLineHitRadius is the hit radius around line points.
	DefaultLineHitRadius = MinimumTargetSize / 2

	// DefaultMaxHighlightDistance is the default selection cutoff in pixels.
	DefaultMaxHighlightDistance = 500.0
)

// Option configures a Highlighter during creation.
//
// Example:
//
//	h := highlight.NewHighlighter(chart,
//	    highlight.WithMaxHighlightDistance(80),
//	    highlight.WithLineHitRadius(16))
type Option func(*options)

// options holds optional configuration for a Highlighter.
type options struct {
	maxDistance float64
	lineRadius  float64
	barBottom   func(Viewport) float64
	logger      *slog.Logger
	bufferCap   int
}

// defaultOptions returns the default highlighter options.
func defaultOptions() options {
	return options{
		maxDistance: DefaultMaxHighlightDistance,
		lineRadius:  DefaultLineHitRadius,
		barBottom:   defaultBarBottom,
		bufferCap:   8,
	}
}

// defaultBarBottom is the bar bottom used when a bar has no stacked
// baseline: the chart's minimum y position plus its height.
func defaultBarBottom(v Viewport) float64 {
	return v.YChartMin + v.Height()
}

// WithMaxHighlightDistance sets the selection cutoff. Candidates at this
// pixel distance or farther are never selected.
func WithMaxHighlightDistance(px float64) Option {
	return func(o *options) {
		o.maxDistance = px
	}
}

// WithLineHitRadius sets the radius of the circular hit area around line
// points. Non-positive values are ignored.
func WithLineHitRadius(px float64) Option {
	return func(o *options) {
		if px > 0 {
			o.lineRadius = px
		}
	}
}

// WithBarBottomFallback sets how the bottom pixel of a bar without a
// stacked baseline is derived from the viewport.
//
// Example:
//
//	// Treat the bottom edge of the content area as the bar bottom.
//	highlight.WithBarBottomFallback(func(v highlight.Viewport) float64 {
//	    return v.Content.Bottom()
//	})
func WithBarBottomFallback(fn func(Viewport) float64) Option {
	return func(o *options) {
		if fn != nil {
			o.barBottom = fn
		}
	}
}

// WithLogger sets the logger of the highlighter, overriding the package
// logger configured with SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithBufferCapacity presizes the candidate buffer.
func WithBufferCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bufferCap = n
		}
	}
}
