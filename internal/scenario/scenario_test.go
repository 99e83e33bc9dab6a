package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/highlight"
)

func TestLoadCombined(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "combined.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "line over bars", s.Name)
	require.Len(t, s.Groups, 3)
	require.NotNil(t, s.RightAxis)
	assert.Equal(t, 300.0, s.Selection.MaxDistance)

	c, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, 3, c.Data().SeriesCount())

	kind, ok := c.Data().KindAt(2)
	require.True(t, ok)
	assert.Equal(t, highlight.KindOther, kind)

	throughput, _, ok := c.Data().SeriesAt(2)
	require.True(t, ok)
	assert.False(t, throughput.HighlightEnabled())
	assert.Equal(t, highlight.AxisRight, throughput.AxisDependency())
}

func TestScenarioSelection(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "combined.yaml"))
	require.NoError(t, err)
	c, err := s.Build()
	require.NoError(t, err)
	h := highlight.NewHighlighter(c, s.Options()...)

	tests := []struct {
		name   string
		x, y   float64
		found  bool
		series int
	}{
		{"near line point", 102, 55, true, 0},
		{"inside bar", 102, 195, true, 1},
		{"outside every footprint", 150, 199, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hl, ok := h.Locate(tt.x, tt.y)
			require.Equal(t, tt.found, ok)
			if ok {
				assert.Equal(t, tt.series, hl.DataSetIndex)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	base := `
viewport: {width: 100, height: 100}
x: {min: 0, max: 1}
left_axis: {min: 0, max: 1}
`
	tests := []struct {
		name string
		doc  string
	}{
		{"no viewport", "x: {min: 0, max: 1}\nleft_axis: {min: 0, max: 1}\n"},
		{"empty x", "viewport: {width: 1, height: 1}\nx: {min: 1, max: 1}\nleft_axis: {min: 0, max: 1}\n"},
		{"empty left", "viewport: {width: 1, height: 1}\nx: {min: 0, max: 1}\nleft_axis: {min: 2, max: 1}\n"},
		{"empty right", base + "right_axis: {min: 0, max: 0}\n"},
		{"bad kind", base + "groups: [{kind: pie}]\n"},
		{"bad axis", base + "groups: [{kind: line, series: [{label: a, axis: top}]}]\n"},
		{"right series without right axis", base + "groups: [{kind: line, series: [{label: a, axis: right}]}]\n"},
		{"bar bottom not finite", base + "selection: {bar_bottom: .nan}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidScenario)
		})
	}

	_, err := Parse([]byte("viewport: [1, 2"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidScenario)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestStackedEntries(t *testing.T) {
	doc := `
viewport: {width: 200, height: 200}
x: {min: 0, max: 10}
left_axis: {min: -20, max: 20}
groups:
  - kind: bar
    series:
      - label: stacked
        entries:
          - {x: 5, y: 10, stack: [-10, 20]}
`
	s, err := Parse([]byte(doc))
	require.NoError(t, err)
	c, err := s.Build()
	require.NoError(t, err)
	h := highlight.NewHighlighter(c, s.Options()...)

	_, ok := h.Locate(100, 140)
	assert.True(t, ok, "above the stacked baseline")
	_, ok = h.Locate(100, 160)
	assert.False(t, ok, "below the stacked baseline")
}

func TestRightAxisSeriesWithRightAxis(t *testing.T) {
	doc := `
viewport: {width: 200, height: 200}
x: {min: 0, max: 10}
left_axis: {min: -20, max: 20}
right_axis: {min: 0, max: 400}
groups:
  - kind: scatter
    series:
      - label: r
        axis: right
        entries:
          - {x: 5, y: 100}
`
	s, err := Parse([]byte(doc))
	require.NoError(t, err)
	c, err := s.Build()
	require.NoError(t, err)
	require.NotNil(t, c.Transformer(highlight.AxisRight))

	// y=100 on [0, 400] is a quarter up from the bottom edge.
	got := highlight.NewHighlighter(c).HighlightsAtX(5)
	require.Len(t, got, 1)
	assert.Equal(t, highlight.AxisRight, got[0].Axis)
	assert.InDelta(t, 150, got[0].YPx, 1e-9)
}

func TestBarBottomSetting(t *testing.T) {
	doc := `
viewport: {width: 200, height: 200}
x: {min: 0, max: 10}
left_axis: {min: -20, max: 20}
selection: {bar_bottom: 120}
groups:
  - kind: bar
    series:
      - label: b
        entries:
          - {x: 5, y: 10}
`
	s, err := Parse([]byte(doc))
	require.NoError(t, err)
	c, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, 120.0, s.BarBottomFallback()(c.Viewport()))

	h := highlight.NewHighlighter(c, s.Options()...)
	_, ok := h.Locate(100, 110)
	assert.True(t, ok)
	_, ok = h.Locate(100, 130)
	assert.False(t, ok, "below the configured bar bottom")

	s.Selection.BarBottom = nil
	assert.Equal(t, 200.0, s.BarBottomFallback()(c.Viewport()))
}
