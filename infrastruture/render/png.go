// Package render draws boards and their graphs as PNG images.
package render

import (
	"image/color"
	"io"

	"github.com/beka-birhanu/gridpath/game/session"
	"github.com/beka-birhanu/gridpath/grid"
	"github.com/fogleman/gg"
)

const (
	defaultCellSize = 100
	nodeRadius      = 0.18 // fraction of a cell
)

var (
	colorOpen     = color.White
	colorWall     = color.Black
	colorBorder   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	colorPath     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	colorStart    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colorEnd      = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	colorEdge     = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	colorMessage  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colorBackdrop = color.RGBA{R: 50, G: 50, B: 50, A: 255}
)

// PNG renders sessions with square cells of CellSize pixels.
type PNG struct {
	CellSize int
}

func NewPNG(cellSize int) *PNG {
	if cellSize <= 0 {
		cellSize = defaultCellSize
	}
	return &PNG{CellSize: cellSize}
}

// Board paints walls, the path and the endpoints, then the message if any.
func (p *PNG) Board(w io.Writer, g grid.Grid, s session.State) error {
	size := float64(p.CellSize)
	dc := gg.NewContext(g.Cols()*p.CellSize, g.Rows()*p.CellSize)
	dc.SetColor(colorBackdrop)
	dc.Clear()

	fill := func(c grid.Cell, col color.Color) {
		dc.DrawRectangle(float64(c.Col)*size, float64(c.Row)*size, size, size)
		dc.SetColor(col)
		dc.Fill()
	}

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell := grid.Cell{Row: r, Col: c}
			if g.IsOpen(cell) {
				fill(cell, colorOpen)
			} else {
				fill(cell, colorWall)
			}
		}
	}

	for _, c := range s.Path {
		fill(c, colorPath)
	}
	if s.Start != nil {
		fill(*s.Start, colorStart)
	}
	if s.End != nil {
		fill(*s.End, colorEnd)
	}

	dc.SetLineWidth(1)
	dc.SetColor(colorBorder)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			dc.DrawRectangle(float64(c)*size, float64(r)*size, size, size)
			dc.Stroke()
		}
	}

	if s.Message != "" {
		dc.SetColor(colorMessage)
		dc.DrawStringAnchored(s.Message, float64(dc.Width())/2, float64(dc.Height())/2, 0.5, 0.5)
	}

	return dc.EncodePNG(w)
}

// Graph plots nodes at their grid positions with edges between them and
// highlights the path and its endpoints.
func (p *PNG) Graph(w io.Writer, g *grid.Graph, s session.State) error {
	size := float64(p.CellSize)
	gr := g.Grid()
	dc := gg.NewContext(gr.Cols()*p.CellSize, gr.Rows()*p.CellSize)
	dc.SetColor(colorOpen)
	dc.Clear()

	center := func(c grid.Cell) (float64, float64) {
		return (float64(c.Col) + 0.5) * size, (float64(c.Row) + 0.5) * size
	}

	dc.SetLineWidth(2)
	dc.SetColor(colorEdge)
	for _, e := range g.Edges() {
		x1, y1 := center(e[0])
		x2, y2 := center(e[1])
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}

	dc.SetLineWidth(6)
	dc.SetColor(colorPath)
	for i := 1; i < len(s.Path); i++ {
		x1, y1 := center(s.Path[i-1])
		x2, y2 := center(s.Path[i])
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}

	onPath := make(map[grid.Cell]struct{}, len(s.Path))
	for _, c := range s.Path {
		onPath[c] = struct{}{}
	}

	dc.SetLineWidth(1)
	for _, c := range g.Nodes() {
		x, y := center(c)
		dc.DrawCircle(x, y, nodeRadius*size)

		switch _, ok := onPath[c]; {
		case s.Start != nil && c == *s.Start:
			dc.SetColor(colorStart)
		case s.End != nil && c == *s.End:
			dc.SetColor(colorEnd)
		case ok:
			dc.SetColor(colorPath)
		default:
			dc.SetColor(colorOpen)
		}
		dc.FillPreserve()
		dc.SetColor(colorWall)
		dc.Stroke()
	}

	return dc.EncodePNG(w)
}
