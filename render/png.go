package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// PNGOptions tunes WritePNG.
type PNGOptions struct {
	Scale    float64 // pixels per diagram unit; default 1
	Padding  float64 // blank border in diagram units; default 20
	FontSize float64 // label size in points; 0 disables labels
}

// DefaultPNGOptions returns Scale 1, Padding 20 and 12pt labels.
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{Scale: 1, Padding: 20, FontSize: 12}
}

var (
	shapeFill  = color.RGBA{R: 0xee, G: 0xf2, B: 0xf7, A: 0xff}
	shapeLine  = color.Black
	routeColor = color.RGBA{R: 0x1f, G: 0x4e, B: 0xa8, A: 0xff}
)

// WritePNG renders f as a PNG image into w.
func WritePNG(w io.Writer, f Frame, opts PNGOptions) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Padding < 0 {
		opts.Padding = 0
	}
	box, err := f.extent()
	if err != nil {
		return err
	}

	width := int((box.W + 2*opts.Padding) * opts.Scale)
	height := int((box.H + 2*opts.Padding) * opts.Scale)
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	px := func(x, y float64) (float64, float64) {
		return (x - box.X + opts.Padding) * opts.Scale, (y - box.Y + opts.Padding) * opts.Scale
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	if opts.FontSize > 0 {
		ttf, err := truetype.Parse(gomono.TTF)
		if err != nil {
			return fmt.Errorf("render: parse font: %w", err)
		}
		dc.SetFontFace(truetype.NewFace(ttf, &truetype.Options{
			Size:    opts.FontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		}))
	}

	dc.SetColor(routeColor)
	dc.SetLineWidth(2)
	for _, r := range f.Routes {
		for i := 1; i < len(r.Points); i++ {
			x1, y1 := px(r.Points[i-1].X, r.Points[i-1].Y)
			x2, y2 := px(r.Points[i].X, r.Points[i].Y)
			dc.DrawLine(x1, y1, x2, y2)
			dc.Stroke()
		}
	}

	dc.SetLineWidth(1)
	for _, s := range f.Shapes {
		x, y := px(s.Bounds.X, s.Bounds.Y)
		w, h := s.Bounds.W*opts.Scale, s.Bounds.H*opts.Scale
		dc.DrawRectangle(x, y, w, h)
		dc.SetColor(shapeFill)
		dc.FillPreserve()
		dc.SetColor(shapeLine)
		dc.Stroke()
		if opts.FontSize > 0 {
			cx, cy := px(s.Bounds.Center().X, s.Bounds.Center().Y)
			dc.DrawStringAnchored(string(s.ID), cx, cy, 0.5, 0.5)
		}
	}

	return dc.EncodePNG(w)
}
