// Package canvas is the reference client-side canvas: a rendered RGBA raster
// plus the viewer's pan/zoom transform. It replays the shared drawing log
// the same way the browser client does, which is what makes the flood-fill
// engine testable end to end: fills are defined against a rendered raster,
// not against the op log.
package canvas

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/WahpiTrex/Draw2Gather/drawing"
	"github.com/WahpiTrex/Draw2Gather/fill"
	"github.com/WahpiTrex/Draw2Gather/geometry"
)

// The infinite canvas renders on white; the eraser paints it back.
var background = color.RGBA{R: 255, G: 255, B: 255, A: 255}

type Canvas struct {
	view geometry.Transform
	dc   *gg.Context
	img  *image.RGBA
}

// New creates a blank white canvas of the given viewport size with an
// identity view transform.
func New(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	c := &Canvas{
		view: geometry.NewTransform(),
		dc:   gg.NewContextForRGBA(img),
		img:  img,
	}
	c.Clear()
	return c
}

func (c *Canvas) View() geometry.Transform {
	return c.view
}

// SetView replaces the pan/zoom transform. The raster is not re-rendered;
// callers replay the log with Load when the view changes.
func (c *Canvas) SetView(view geometry.Transform) {
	c.view = view
}

// Clear resets the raster to the blank background.
func (c *Canvas) Clear() {
	c.dc.SetColor(background)
	c.dc.Clear()
}

// Load clears the raster and replays a drawing log in order.
func (c *Canvas) Load(ops []drawing.Op) {
	c.Clear()
	for _, op := range ops {
		c.Apply(op)
	}
}

// Apply renders one op through the canvas's own view transform. Fills are
// replayed by resolving the stored world seed to a local screen pixel and
// re-running the flood engine against this raster; this only converges when
// all prior ops were applied in log order first.
func (c *Canvas) Apply(op drawing.Op) {
	switch {
	case op.IsStroke():
		c.renderStroke(op)
	case op.IsFill():
		seed := c.view.WorldToScreen(*op.Seed)
		fill.Flood(c.img, screenPixel(seed), op.Color.RGBA())
	}
}

// FillAt performs a local bucket fill at a screen point and, when pixels
// were actually painted, returns the world-seeded op to transmit. The bool
// is false for redundant fills (seed already at the target color) and for
// seeds outside the world bounds; neither emits an op.
func (c *Canvas) FillAt(screen geometry.Point, col drawing.RGB) (drawing.Op, bool) {
	op, err := drawing.NewFill(col, c.view.ScreenToWorld(screen))
	if err != nil {
		return drawing.Op{}, false
	}
	if _, ok := fill.Flood(c.img, screenPixel(screen), col.RGBA()); !ok {
		return drawing.Op{}, false
	}
	return op, true
}

func (c *Canvas) renderStroke(op drawing.Op) {
	if len(op.Points) < 2 {
		return
	}

	col := op.Color.RGBA()
	if op.Tool == drawing.ToolEraser {
		col = background
	}

	c.dc.SetColor(col)
	c.dc.SetLineWidth(op.Width * c.view.Scale)
	c.dc.SetLineCapRound()
	c.dc.SetLineJoinRound()

	first := c.view.WorldToScreen(op.Points[0])
	c.dc.MoveTo(first.X, first.Y)
	for _, p := range op.Points[1:] {
		s := c.view.WorldToScreen(p)
		c.dc.LineTo(s.X, s.Y)
	}
	c.dc.Stroke()
}

// Image exposes the raster for inspection.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// ColorAt samples the rendered pixel under a world point, or ok=false when
// that point is outside this viewer's viewport.
func (c *Canvas) ColorAt(world geometry.Point) (color.RGBA, bool) {
	px := screenPixel(c.view.WorldToScreen(world))
	if !px.In(c.img.Bounds()) {
		return color.RGBA{}, false
	}
	return c.img.RGBAAt(px.X, px.Y), true
}

func screenPixel(p geometry.Point) image.Point {
	return image.Pt(int(p.X), int(p.Y))
}
