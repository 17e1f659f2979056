package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/orthoroute/core"
)

var (
	routeStyle = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	shapeStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	labelStyle = tcell.StyleDefault.Bold(true)
)

// DrawScreen paints f onto s, one terminal cell per grid cell, with a
// one-cell border. Content beyond the screen is clipped. The caller calls
// s.Show.
func DrawScreen(s tcell.Screen, f Frame, grid core.Grid) error {
	box, err := f.extent()
	if err != nil {
		return err
	}
	col := func(x float64) int { return int(math.Floor((x-box.X)/grid.Step)) + 1 }
	row := func(y float64) int { return int(math.Floor((y-box.Y)/grid.Step)) + 1 }

	s.Clear()
	for _, r := range f.Routes {
		for i := 1; i < len(r.Points); i++ {
			a, b := r.Points[i-1], r.Points[i]
			drawSegment(s, col(a.X), row(a.Y), col(b.X), row(b.Y))
		}
		for i := 1; i+1 < len(r.Points); i++ {
			s.SetContent(col(r.Points[i].X), row(r.Points[i].Y), '┼', nil, routeStyle)
		}
	}

	for _, sh := range f.Shapes {
		x0, y0 := col(sh.Bounds.X), row(sh.Bounds.Y)
		x1, y1 := col(sh.Bounds.Right()), row(sh.Bounds.Bottom())
		for x := x0 + 1; x < x1; x++ {
			s.SetContent(x, y0, '─', nil, shapeStyle)
			s.SetContent(x, y1, '─', nil, shapeStyle)
		}
		for y := y0 + 1; y < y1; y++ {
			s.SetContent(x0, y, '│', nil, shapeStyle)
			s.SetContent(x1, y, '│', nil, shapeStyle)
		}
		s.SetContent(x0, y0, '┌', nil, shapeStyle)
		s.SetContent(x1, y0, '┐', nil, shapeStyle)
		s.SetContent(x0, y1, '└', nil, shapeStyle)
		s.SetContent(x1, y1, '┘', nil, shapeStyle)

		c := sh.Bounds.Center()
		lx, ly := col(c.X), row(c.Y)
		for i, ch := range string(sh.ID) {
			if lx+i >= x1 {
				break
			}
			s.SetContent(lx+i, ly, ch, nil, labelStyle)
		}
	}

	return nil
}

// drawSegment draws a straight run between two terminal cells. Diagonal
// segments come from fallback routes and from routes simplified with
// simplify.WithAnchorsOnly; they are drawn as an L.
func drawSegment(s tcell.Screen, x0, y0, x1, y1 int) {
	if x0 != x1 || y0 == y1 {
		for x := min(x0, x1); x <= max(x0, x1); x++ {
			s.SetContent(x, y0, '─', nil, routeStyle)
		}
	}
	if y0 != y1 {
		for y := min(y0, y1); y <= max(y0, y1); y++ {
			s.SetContent(x1, y, '│', nil, routeStyle)
		}
	}
}
