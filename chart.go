package highlight

// Viewport describes the visible part of a chart.
type Viewport struct {
	// Content is the pixel rectangle the data is drawn into.
	Content Rect

	// XMin and XMax bound the visible x values.
	XMin, XMax float64

	// YChartMin is the pixel offset of the content from the top of the view.
	YChartMin float64
}

// Width returns the content width in pixels.
func (v Viewport) Width() float64 { return v.Content.Width() }

// Height returns the content height in pixels.
func (v Viewport) Height() float64 { return v.Content.Height() }

// XRange returns the span of visible x values.
func (v Viewport) XRange() float64 { return v.XMax - v.XMin }

// StepWidth returns the pixel width of one x unit, or 0 when the visible
// x range is empty.
func (v Viewport) StepWidth() float64 {
	r := v.XRange()
	if r <= 0 {
		return 0
	}
	return v.Width() / r
}

// Chart is what a Highlighter needs from the rendering surface.
type Chart interface {
	// Data returns the series shown by the chart. It may be nil.
	Data() *CombinedData

	// Transformer returns the coordinate transform of a value axis.
	Transformer(axis AxisDependency) Transformer

	// Viewport returns the current viewport metrics.
	Viewport() Viewport
}

// StaticChart is a Chart with fixed data, viewport and transforms.
type StaticChart struct {
	data     *CombinedData
	viewport Viewport
	left     Transformer
	right    Transformer
}

// NewStaticChart creates a chart. right may be nil for charts without a
// right axis; series plotted against it then produce no highlights.
func NewStaticChart(data *CombinedData, viewport Viewport, left, right Transformer) (*StaticChart, error) {
	if left == nil {
		return nil, ErrNilTransformer
	}
	if viewport.Content.IsEmpty() {
		return nil, ErrEmptyViewport
	}
	return &StaticChart{data: data, viewport: viewport, left: left, right: right}, nil
}

// Data implements Chart.
func (c *StaticChart) Data() *CombinedData { return c.data }

// Viewport implements Chart.
func (c *StaticChart) Viewport() Viewport { return c.viewport }

// Transformer implements Chart. It returns nil for the right axis of a
// chart built without one.
func (c *StaticChart) Transformer(axis AxisDependency) Transformer {
	if axis == AxisRight {
		return c.right
	}
	return c.left
}
