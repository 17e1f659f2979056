package render_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthoroute/core"
	"github.com/katalvlaran/orthoroute/diagram"
	"github.com/katalvlaran/orthoroute/render"
)

// testFrame holds a{0,0,60,40}, b{200,0,60,40} and a straight route between them.
func testFrame() render.Frame {
	return render.Frame{
		Shapes: []core.Shape{
			{ID: "a", Bounds: core.Rect{X: 0, Y: 0, W: 60, H: 40}},
			{ID: "b", Bounds: core.Rect{X: 200, Y: 0, W: 60, H: 40}},
		},
		Routes: []render.Polyline{
			{ID: "c1", Points: []core.Point{{X: 60, Y: 20}, {X: 200, Y: 20}}},
		},
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.WritePNG(&buf, testFrame(), render.DefaultPNGOptions()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())

	r, g, b, _ := img.At(150, 40).RGBA()
	assert.Less(t, r>>8, uint32(0x80), "route pixel should be blue")
	assert.Greater(t, b>>8, g>>8)

	r, g, b, _ = img.At(150, 70).RGBA()
	assert.Equal(t, [3]uint32{0xff, 0xff, 0xff}, [3]uint32{r >> 8, g >> 8, b >> 8}, "background is white")
}

func TestWritePNG_ScaleAndNoLabels(t *testing.T) {
	var buf bytes.Buffer
	err := render.WritePNG(&buf, testFrame(), render.PNGOptions{Scale: 2, Padding: 0})
	require.NoError(t, err)

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 520, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())
}

func TestWritePNG_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := render.WritePNG(&buf, render.Frame{}, render.DefaultPNGOptions())
	assert.ErrorIs(t, err, render.ErrEmptyFrame)
	assert.Zero(t, buf.Len())
}

func TestDrawScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(80, 24)

	require.NoError(t, render.DrawScreen(screen, testFrame(), core.DefaultGrid()))
	screen.Show()

	at := func(x, y int) rune {
		r, _, _, _ := screen.GetContent(x, y)
		return r
	}
	assert.Equal(t, '┌', at(1, 1))
	assert.Equal(t, '┘', at(7, 5))
	assert.Equal(t, 'a', at(4, 3))
	assert.Equal(t, 'b', at(24, 3))
	assert.Equal(t, '─', at(14, 3), "route runs along row 3")
	assert.Equal(t, '│', at(7, 3), "shape border is drawn over the route end")
	assert.Equal(t, ' ', at(14, 10))

	assert.ErrorIs(t, render.DrawScreen(screen, render.Frame{}, core.DefaultGrid()), render.ErrEmptyFrame)
}

func TestFrameOf(t *testing.T) {
	d := diagram.New()
	require.NoError(t, d.AddShape(core.Shape{ID: "a", Bounds: core.Rect{W: 10, H: 10}}))
	require.NoError(t, d.AddShape(core.Shape{ID: "b", Bounds: core.Rect{X: 50, W: 10, H: 10}}))
	for _, id := range []core.ConnectorID{"routed", "pending"} {
		_, err := d.AddConnector(diagram.Connector{ID: id, From: core.AnchorRef{Shape: "a"}, To: core.AnchorRef{Shape: "b"}})
		require.NoError(t, err)
	}
	require.NoError(t, d.SetRoute("routed", []core.Point{{X: 10, Y: 5}, {X: 50, Y: 5}}))

	f := render.FrameOf(d)
	assert.Len(t, f.Shapes, 2)
	require.Len(t, f.Routes, 1)
	assert.Equal(t, core.ConnectorID("routed"), f.Routes[0].ID)
}
