// Package scenario loads chart scenarios for the hlpick command.
//
// A scenario is a YAML document describing the viewport, the axis ranges
// and the series of a chart, so that selection behaviour can be reproduced
// outside of an interactive surface.
package scenario

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/highlight"
)

// ErrInvalidScenario is wrapped by every validation error.
var ErrInvalidScenario = errors.New("scenario: invalid")

// Scenario is the root of a scenario document.
type Scenario struct {
	Name      string         `yaml:"name"`
	Viewport  ViewportConfig `yaml:"viewport"`
	X         RangeConfig    `yaml:"x"`
	LeftAxis  AxisConfig     `yaml:"left_axis"`
	RightAxis *AxisConfig    `yaml:"right_axis"`
	Selection SelectConfig   `yaml:"selection"`
	Groups    []GroupConfig  `yaml:"groups"`
}

// ViewportConfig places the chart content area in pixels.
type ViewportConfig struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RangeConfig is the visible x range.
type RangeConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// AxisConfig is the visible range of a value axis.
type AxisConfig struct {
	Min      float64 `yaml:"min"`
	Max      float64 `yaml:"max"`
	Inverted bool    `yaml:"inverted"`
}

// SelectConfig tunes the highlighter. Zero values keep the defaults.
//
// BarBottom is the pixel y where bars without a stacked baseline end.
// When unset they end at the bottom of the chart.
type SelectConfig struct {
	MaxDistance float64  `yaml:"max_distance"`
	LineRadius  float64  `yaml:"line_radius"`
	BarBottom   *float64 `yaml:"bar_bottom"`
}

// GroupConfig is a set of series drawn with one visual kind.
type GroupConfig struct {
	Kind   string         `yaml:"kind"`
	Series []SeriesConfig `yaml:"series"`
}

// SeriesConfig is one data series. Highlight defaults to true.
type SeriesConfig struct {
	Label     string        `yaml:"label"`
	Axis      string        `yaml:"axis"`
	Highlight *bool         `yaml:"highlight"`
	Entries   []EntryConfig `yaml:"entries"`
}

// EntryConfig is one data point. Stack lists stacked bar values,
// bottom segment first.
type EntryConfig struct {
	X     float64   `yaml:"x"`
	Y     float64   `yaml:"y"`
	Stack []float64 `yaml:"stack"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the scenario for values that cannot form a chart.
func (s *Scenario) Validate() error {
	if s.Viewport.Width <= 0 || s.Viewport.Height <= 0 {
		return fmt.Errorf("%w: viewport size %vx%v", ErrInvalidScenario, s.Viewport.Width, s.Viewport.Height)
	}
	if s.X.Max <= s.X.Min {
		return fmt.Errorf("%w: x range [%v, %v]", ErrInvalidScenario, s.X.Min, s.X.Max)
	}
	if s.LeftAxis.Max <= s.LeftAxis.Min {
		return fmt.Errorf("%w: left axis range [%v, %v]", ErrInvalidScenario, s.LeftAxis.Min, s.LeftAxis.Max)
	}
	if s.RightAxis != nil && s.RightAxis.Max <= s.RightAxis.Min {
		return fmt.Errorf("%w: right axis range [%v, %v]", ErrInvalidScenario, s.RightAxis.Min, s.RightAxis.Max)
	}
	if b := s.Selection.BarBottom; b != nil && (math.IsNaN(*b) || math.IsInf(*b, 0)) {
		return fmt.Errorf("%w: bar_bottom %v", ErrInvalidScenario, *b)
	}
	for gi, g := range s.Groups {
		if _, err := parseKind(g.Kind); err != nil {
			return fmt.Errorf("group %d: %w", gi, err)
		}
		for si, sc := range g.Series {
			axis, err := parseAxis(sc.Axis)
			if err != nil {
				return fmt.Errorf("group %d series %d: %w", gi, si, err)
			}
			if axis == highlight.AxisRight && s.RightAxis == nil {
				return fmt.Errorf("%w: group %d series %d uses the right axis but right_axis is not set",
					ErrInvalidScenario, gi, si)
			}
		}
	}
	return nil
}

// Content returns the pixel rectangle of the chart content.
func (s *Scenario) Content() highlight.Rect {
	return highlight.RectWH(s.Viewport.Left, s.Viewport.Top, s.Viewport.Width, s.Viewport.Height)
}

// Build creates the chart described by the scenario.
func (s *Scenario) Build() (*highlight.StaticChart, error) {
	content := s.Content()
	xRange := s.X.Max - s.X.Min

	left, err := highlight.NewAxisTransformer(content, s.X.Min, xRange,
		s.LeftAxis.Min, s.LeftAxis.Max-s.LeftAxis.Min, s.LeftAxis.Inverted)
	if err != nil {
		return nil, fmt.Errorf("scenario: left axis: %w", err)
	}

	var right highlight.Transformer
	if s.RightAxis != nil {
		r, err := highlight.NewAxisTransformer(content, s.X.Min, xRange,
			s.RightAxis.Min, s.RightAxis.Max-s.RightAxis.Min, s.RightAxis.Inverted)
		if err != nil {
			return nil, fmt.Errorf("scenario: right axis: %w", err)
		}
		right = r
	}

	data := highlight.NewCombinedData()
	for _, g := range s.Groups {
		kind, err := parseKind(g.Kind)
		if err != nil {
			return nil, err
		}
		sets := make([]highlight.Series, 0, len(g.Series))
		for _, sc := range g.Series {
			ds, err := sc.dataSet()
			if err != nil {
				return nil, err
			}
			sets = append(sets, ds)
		}
		data.AddGroup(kind, sets...)
	}

	return highlight.NewStaticChart(data, highlight.Viewport{
		Content:   content,
		XMin:      s.X.Min,
		XMax:      s.X.Max,
		YChartMin: s.Viewport.Top,
	}, left, right)
}

// Options returns the highlighter options configured by the scenario.
func (s *Scenario) Options() []highlight.Option {
	var opts []highlight.Option
	if s.Selection.MaxDistance > 0 {
		opts = append(opts, highlight.WithMaxHighlightDistance(s.Selection.MaxDistance))
	}
	if s.Selection.LineRadius > 0 {
		opts = append(opts, highlight.WithLineHitRadius(s.Selection.LineRadius))
	}
	return append(opts, highlight.WithBarBottomFallback(s.BarBottomFallback()))
}

// BarBottomFallback returns the pixel bottom of bars without a stacked
// baseline, as configured by selection.bar_bottom.
func (s *Scenario) BarBottomFallback() func(highlight.Viewport) float64 {
	if b := s.Selection.BarBottom; b != nil {
		y := *b
		return func(highlight.Viewport) float64 { return y }
	}
	return func(v highlight.Viewport) float64 {
		return v.YChartMin + v.Height()
	}
}

func (sc SeriesConfig) dataSet() (*highlight.DataSet, error) {
	axis, err := parseAxis(sc.Axis)
	if err != nil {
		return nil, err
	}
	entries := make([]highlight.Entry, len(sc.Entries))
	for i, e := range sc.Entries {
		entries[i] = highlight.Entry{X: e.X, Y: e.Y, YVals: e.Stack}
	}
	enabled := sc.Highlight == nil || *sc.Highlight
	return highlight.NewDataSet(sc.Label, entries,
		highlight.WithAxis(axis),
		highlight.WithHighlightEnabled(enabled)), nil
}

func parseKind(s string) (highlight.SeriesKind, error) {
	switch strings.ToLower(s) {
	case "line":
		return highlight.KindLine, nil
	case "bar":
		return highlight.KindBar, nil
	case "", "other", "scatter", "candle", "bubble":
		return highlight.KindOther, nil
	default:
		return highlight.KindOther, fmt.Errorf("%w: unknown kind %q", ErrInvalidScenario, s)
	}
}

func parseAxis(s string) (highlight.AxisDependency, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return highlight.AxisLeft, nil
	case "right":
		return highlight.AxisRight, nil
	default:
		return highlight.AxisLeft, fmt.Errorf("%w: unknown axis %q", ErrInvalidScenario, s)
	}
}
