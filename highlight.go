package highlight

import "fmt"

// Highlight is a selectable data point together with its pixel position.
// The pixel position is computed once, through the transform of the
// series' own axis, when the Highlight is built.
type Highlight struct {
	// X and Y are the data values.
	X, Y float64

	// XPx and YPx are the pixel position of the value.
	XPx, YPx float64

	// DataSetIndex is the global index of the series.
	DataSetIndex int

	// Axis is the value axis of the series.
	Axis AxisDependency

	// DataIndex is the index of the group owning the series.
	DataIndex int
}

// newHighlight builds the candidate for e in series s.
func newHighlight(e Entry, t Transformer, dataSetIndex, dataIndex int, axis AxisDependency) Highlight {
	px := t.PixelForValues(e.X, e.Y)
	return Highlight{
		X:            e.X,
		Y:            e.Y,
		XPx:          px.X,
		YPx:          px.Y,
		DataSetIndex: dataSetIndex,
		Axis:         axis,
		DataIndex:    dataIndex,
	}
}

// Pixel returns the pixel position as a Point.
func (h Highlight) Pixel() Point {
	return Pt(h.XPx, h.YPx)
}

// String returns a compact description for logs.
func (h Highlight) String() string {
	return fmt.Sprintf("Highlight{x=%g y=%g px=(%.1f,%.1f) set=%d data=%d axis=%s}",
		h.X, h.Y, h.XPx, h.YPx, h.DataSetIndex, h.DataIndex, h.Axis)
}
