package main

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/highlight"
)

const renderMargin = 40

// renderPNG draws the chart, the pointer and the selected point.
// barBottom must be the fallback the highlighter was configured with, so
// drawn bars match the hit-test footprint.
func renderPNG(path string, c highlight.Chart, barBottom func(highlight.Viewport) float64,
	pointer highlight.Point, hl highlight.Highlight, found bool) error {
	img := drawChart(c, barBottom, pointer, hl, found)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func drawChart(c highlight.Chart, barBottom func(highlight.Viewport) float64,
	pointer highlight.Point, hl highlight.Highlight, found bool) *image.RGBA {
	vp := c.Viewport()
	w := int(math.Ceil(vp.Content.Max.X)) + renderMargin
	h := int(math.Ceil(vp.Content.Max.Y)) + renderMargin

	dc := gg.NewContext(w, h)
	defer func() { _ = dc.Close() }()

	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(0, 0, float64(w), float64(h))
	_ = dc.Fill()

	dc.SetRGB(0.75, 0.75, 0.75)
	dc.SetLineWidth(1)
	dc.DrawRectangle(vp.Content.Min.X, vp.Content.Min.Y, vp.Width(), vp.Height())
	_ = dc.Stroke()

	data := c.Data()
	for gi := 0; gi < data.GroupCount(); gi++ {
		g := data.Group(gi)
		for si, s := range g.Sets {
			ds, ok := s.(*highlight.DataSet)
			if !ok {
				continue
			}
			r, gr, b := seriesColor(gi, si)
			dc.SetRGB(r, gr, b)
			drawSeries(dc, c, g.Kind, ds, barBottom)
		}
	}

	// Pointer cross.
	dc.SetRGB(0.2, 0.2, 0.2)
	dc.DrawLine(pointer.X-6, pointer.Y, pointer.X+6, pointer.Y)
	dc.DrawLine(pointer.X, pointer.Y-6, pointer.X, pointer.Y+6)
	_ = dc.Stroke()

	if found {
		dc.SetRGBA(0.9, 0.1, 0.1, 0.9)
		dc.SetLineWidth(2)
		dc.DrawCircle(hl.XPx, hl.YPx, 7)
		_ = dc.Stroke()
		dc.SetLineWidth(1)
		dc.DrawLine(hl.XPx, vp.Content.Min.Y, hl.XPx, vp.Content.Max.Y)
		_ = dc.Stroke()
	}

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), dc.Image(), image.Point{}, draw.Src)

	if found {
		drawLabel(rgba, int(hl.XPx)+10, int(hl.YPx)-10, hl.String())
	} else {
		drawLabel(rgba, int(vp.Content.Min.X)+4, h-12, "no selection")
	}
	return rgba
}

func drawSeries(dc *gg.Context, c highlight.Chart, kind highlight.SeriesKind, ds *highlight.DataSet,
	barBottom func(highlight.Viewport) float64) {
	t := c.Transformer(ds.AxisDependency())
	if t == nil {
		return
	}
	vp := c.Viewport()

	switch kind {
	case highlight.KindLine:
		for i := 0; i < ds.Len(); i++ {
			e := ds.Entry(i)
			p := t.PixelForValues(e.X, e.Y)
			if i == 0 {
				dc.MoveTo(p.X, p.Y)
			} else {
				dc.LineTo(p.X, p.Y)
			}
		}
		dc.SetLineWidth(2)
		_ = dc.Stroke()
		for i := 0; i < ds.Len(); i++ {
			e := ds.Entry(i)
			p := t.PixelForValues(e.X, e.Y)
			dc.DrawCircle(p.X, p.Y, 3)
			_ = dc.Fill()
		}
	case highlight.KindBar:
		half := vp.StepWidth() * 0.4
		for i := 0; i < ds.Len(); i++ {
			e := ds.Entry(i)
			top := t.PixelForValues(e.X, e.Y)
			bottom := barBottom(vp)
			if base, ok := e.Baseline(); ok {
				bottom = t.PixelForValues(e.X, base).Y
			}
			dc.DrawRectangle(top.X-half, math.Min(top.Y, bottom), 2*half, math.Abs(bottom-top.Y))
			_ = dc.Fill()
		}
	default:
		for i := 0; i < ds.Len(); i++ {
			e := ds.Entry(i)
			p := t.PixelForValues(e.X, e.Y)
			dc.DrawCircle(p.X, p.Y, 4)
			_ = dc.Fill()
		}
	}
}

// seriesColor spreads series over a small palette.
func seriesColor(group, series int) (r, g, b float64) {
	palette := [][3]float64{
		{0.12, 0.47, 0.71},
		{1.00, 0.50, 0.05},
		{0.17, 0.63, 0.17},
		{0.58, 0.40, 0.74},
		{0.55, 0.34, 0.29},
	}
	c := palette[(group*3+series)%len(palette)]
	return c[0], c[1], c[2]
}

func drawLabel(dst *image.RGBA, x, y int, text string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{A: 255}),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}
