package main

import (
	"image"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
)

// grid lays out widgets in an equally-spaced grid.
type grid struct {
	rows, cols int
	spacing    int // px
}

type gridWidget func(int, int, layout.Context) layout.Dimensions

// layout places the grid elements by calling widget for each row/column. Cells are placed
// at integer coordinates, so the grid looks slightly uneven with too little spacing.
func (g *grid) layout(gtx layout.Context, widget gridWidget) layout.Dimensions {
	var (
		size  = gtx.Constraints.Max
		w, h  = float32(size.X), float32(size.Y)
		space = float32(g.spacing)
	)
	if g.cols > 0 {
		w = (w - float32(g.cols-1)*space) / float32(g.cols)
	}
	if g.rows > 0 {
		h = (h - float32(g.rows-1)*space) / float32(g.rows)
	}

	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			pos := image.Point{
				X: int(float32(col)*w + float32(col)*space),
				Y: int(float32(row)*h + float32(row)*space),
			}
			cell := gtx
			cell.Constraints = layout.Exact(image.Pt(int(w), int(h)))
			stk := op.Offset(pos).Push(gtx.Ops)
			widget(row, col, cell)
			stk.Pop()
		}
	}
	return layout.Dimensions{Size: size}
}

// shrinkToFit renders w, scaling down if it doesn't fit into the available width.
// The result is placed at the bottom of the available space, on the side given by align.
func shrinkToFit(gtx layout.Context, align text.Alignment, w layout.Widget) layout.Dimensions {
	size := gtx.Constraints.Max

	// Render w with near-infinite width.
	macro := op.Record(gtx.Ops)
	wide := gtx
	wide.Constraints.Min = image.Point{}
	wide.Constraints.Max.X = 10e6
	dim := w(wide)
	call := macro.Stop()

	scale := float32(1)
	if dim.Size.X > size.X {
		scale = float32(size.X) / float32(dim.Size.X)
	}
	var x float32
	if align == text.End {
		x = float32(size.X) - float32(dim.Size.X)*scale
	}
	y := float32(size.Y) - float32(dim.Size.Y)*scale
	tr := f32.Affine2D{}.Scale(f32.Point{}, f32.Pt(scale, scale)).Offset(f32.Pt(x, y))
	stk := op.Affine(tr).Push(gtx.Ops)
	call.Add(gtx.Ops)
	stk.Pop()
	return layout.Dimensions{Size: size}
}
