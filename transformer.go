package highlight

import (
	"fmt"
	"math"
)

// Transformer converts between data values and pixel positions for one
// value axis. Implementations must be deterministic: the same input always
// maps to the same output.
type Transformer interface {
	// PixelForValues returns the pixel position of a data point.
	PixelForValues(x, y float64) Point

	// ValuesByTouchPoint returns the data values at a pixel position.
	ValuesByTouchPoint(px, py float64) Point
}

// AxisTransformer is the standard Transformer for a rectangular chart area.
// It composes a value matrix (data units to pixel units) with an offset
// matrix (placement inside the content rectangle).
type AxisTransformer struct {
	toPixel Matrix
	toValue Matrix
}

// NewAxisTransformer builds the transform for a content rectangle showing
// x in [xMin, xMin+xRange] and y in [yMin, yMin+yRange].
//
// Pixel y grows downwards, so yMin maps to the bottom edge of content unless
// inverted is set, in which case yMin maps to the top edge.
func NewAxisTransformer(content Rect, xMin, xRange, yMin, yRange float64, inverted bool) (*AxisTransformer, error) {
	if !validRange(xRange) {
		return nil, fmt.Errorf("highlight: x range %v: %w", xRange, ErrEmptyRange)
	}
	if !validRange(yRange) {
		return nil, fmt.Errorf("highlight: y range %v: %w", yRange, ErrEmptyRange)
	}
	if content.IsEmpty() {
		return nil, ErrEmptyViewport
	}

	sx := content.Width() / xRange
	sy := content.Height() / yRange

	var value, offset Matrix
	if inverted {
		value = Scale(sx, sy).Multiply(Translate(-xMin, -yMin))
		offset = Translate(content.Min.X, content.Min.Y)
	} else {
		value = Scale(sx, -sy).Multiply(Translate(-xMin, -yMin))
		offset = Translate(content.Min.X, content.Max.Y)
	}

	m := offset.Multiply(value)
	return &AxisTransformer{toPixel: m, toValue: m.Invert()}, nil
}

// NewMatrixTransformer wraps an arbitrary value-to-pixel matrix.
func NewMatrixTransformer(m Matrix) (*AxisTransformer, error) {
	if !m.IsInvertible() {
		return nil, ErrSingularTransform
	}
	return &AxisTransformer{toPixel: m, toValue: m.Invert()}, nil
}

// PixelForValues implements Transformer.
func (t *AxisTransformer) PixelForValues(x, y float64) Point {
	return t.toPixel.TransformPoint(Pt(x, y))
}

// ValuesByTouchPoint implements Transformer.
func (t *AxisTransformer) ValuesByTouchPoint(px, py float64) Point {
	return t.toValue.TransformPoint(Pt(px, py))
}

func validRange(r float64) bool {
	return r > 0 && !math.IsInf(r, 0) && !math.IsNaN(r)
}
