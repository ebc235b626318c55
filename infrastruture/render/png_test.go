package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/beka-birhanu/gridpath/game/session"
	"github.com/beka-birhanu/gridpath/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sameRGB(t *testing.T, want color.Color, got color.Color) {
	t.Helper()
	wr, wg, wb, _ := want.RGBA()
	gr, gg, gb, _ := got.RGBA()
	assert.Equal(t, [3]uint32{wr >> 8, wg >> 8, wb >> 8}, [3]uint32{gr >> 8, gg >> 8, gb >> 8})
}

func resolvedState(t *testing.T, g *grid.Graph) session.State {
	s, err := session.Select(session.State{}, g, grid.Cell{Row: 0, Col: 0})
	require.NoError(t, err)
	s, err = session.Select(s, g, grid.Cell{Row: 3, Col: 3})
	require.NoError(t, err)
	return s
}

func TestBoard(t *testing.T) {
	gr := grid.ReferenceBoard()
	g := grid.Build(gr)
	r := NewPNG(10)
	s := resolvedState(t, g)

	var buf bytes.Buffer
	require.NoError(t, r.Board(&buf, gr, s))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 60, 60), img.Bounds())

	// Sample cell centers.
	at := func(c grid.Cell) color.Color { return img.At(c.Col*10+5, c.Row*10+5) }
	sameRGB(t, colorStart, at(grid.Cell{Row: 0, Col: 0}))
	sameRGB(t, colorEnd, at(grid.Cell{Row: 3, Col: 3}))
	sameRGB(t, colorWall, at(grid.Cell{Row: 0, Col: 1}))
	sameRGB(t, colorPath, at(s.Path[1]))
	sameRGB(t, colorOpen, at(grid.Cell{Row: 5, Col: 5}))
}

func TestGraph(t *testing.T) {
	gr := grid.ReferenceBoard()
	g := grid.Build(gr)
	r := NewPNG(0)

	var buf bytes.Buffer
	require.NoError(t, r.Graph(&buf, g, resolvedState(t, g)))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 600, 600), img.Bounds())

	// Node centers carry the endpoint colors; wall cells stay blank.
	sameRGB(t, colorStart, img.At(50, 50))
	sameRGB(t, colorEnd, img.At(350, 350))
	sameRGB(t, colorOpen, img.At(150, 50))
}
