package diagram_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orthoroute/core"
	"github.com/katalvlaran/orthoroute/diagram"
)

const sceneYAML = `
step: 5
shapes:
  - {id: a, x: 0, y: 0, w: 60, h: 40}
  - {id: b, x: 120, y: 10, w: 60, h: 40}
connectors:
  - {id: c1, from: {shape: a, side: right}, to: {shape: b, side: left}}
  - from: {shape: b, side: bottom}
    to: {shape: a}
`

func TestLoadScene(t *testing.T) {
	d, grid, err := diagram.LoadScene(strings.NewReader(sceneYAML))
	require.NoError(t, err)
	assert.Equal(t, 5.0, grid.Step)

	shapes := d.Shapes()
	require.Len(t, shapes, 2)
	assert.Equal(t, core.Shape{ID: "b", Bounds: rect(120, 10, 60, 40)}, shapes[1])

	conns := d.Connectors()
	require.Len(t, conns, 2)
	assert.Equal(t, diagram.Connector{
		ID:   "c1",
		From: core.AnchorRef{Shape: "a", Side: core.SideRight},
		To:   core.AnchorRef{Shape: "b", Side: core.SideLeft},
	}, conns[0])
	assert.Len(t, string(conns[1].ID), 26)
	assert.Equal(t, core.SideBottom, conns[1].From.Side)
	assert.Equal(t, core.SideRight, conns[1].To.Side, "omitted side faces the other shape")
}

func TestFacing(t *testing.T) {
	a := rect(100, 100, 40, 40)
	cases := []struct {
		name string
		to   core.Rect
		want core.Side
	}{
		{"East", rect(300, 120, 40, 40), core.SideRight},
		{"West", rect(-200, 80, 40, 40), core.SideLeft},
		{"South", rect(110, 300, 40, 40), core.SideBottom},
		{"North", rect(90, -100, 40, 40), core.SideTop},
		{"DiagonalTieGoesVertical", rect(200, 200, 40, 40), core.SideBottom},
		{"Concentric", rect(110, 110, 20, 20), core.SideRight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, diagram.Facing(a, tc.to))
		})
	}
}

func TestLoadScene_ExplicitSidesWin(t *testing.T) {
	doc := `
shapes:
  - {id: a, x: 0, y: 0, w: 60, h: 40}
  - {id: b, x: 200, y: 0, w: 60, h: 40}
connectors:
  - {id: c1, from: {shape: a, side: other}, to: {shape: b}}
`
	d, _, err := diagram.LoadScene(strings.NewReader(doc))
	require.NoError(t, err)
	src, dst, err := d.Endpoints("c1")
	require.NoError(t, err)
	assert.Equal(t, core.SideOther, src.Side)
	assert.Equal(t, core.SideLeft, dst.Side)
}

func TestLoadScene_DefaultStep(t *testing.T) {
	_, grid, err := diagram.LoadScene(strings.NewReader("shapes: []\n"))
	require.NoError(t, err)
	assert.Equal(t, core.DefaultGrid(), grid)
}

func TestLoadScene_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "", diagram.ErrBadScene},
		{"not yaml", "shapes: [", diagram.ErrBadScene},
		{"unknown field", "shapes: []\ncolour: red\n", diagram.ErrBadScene},
		{"negative step", "step: -1\nshapes: []\n", diagram.ErrBadScene},
		{"duplicate shape", "shapes:\n  - {id: a, w: 1, h: 1}\n  - {id: a, w: 1, h: 1}\n", diagram.ErrDuplicateID},
		{"unknown shape", "shapes:\n  - {id: a, w: 1, h: 1}\nconnectors:\n  - {from: {shape: a}, to: {shape: z}}\n", diagram.ErrShapeNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := diagram.LoadScene(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
