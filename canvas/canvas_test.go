package canvas

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WahpiTrex/Draw2Gather/drawing"
	"github.com/WahpiTrex/Draw2Gather/geometry"
)

var (
	red   = drawing.RGB{R: 255}
	blue  = drawing.RGB{B: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func mustStroke(t *testing.T, tool drawing.Tool, col drawing.RGB, width float64, points ...geometry.Point) drawing.Op {
	t.Helper()
	op, err := drawing.NewStroke(tool, col, width, points)
	require.NoError(t, err)
	return op
}

// A closed square outline in world space, to box fills in.
func squareOutline(t *testing.T, col drawing.RGB) drawing.Op {
	return mustStroke(t, drawing.ToolPencil, col, 10,
		geometry.Point{X: 100, Y: 100},
		geometry.Point{X: 300, Y: 100},
		geometry.Point{X: 300, Y: 300},
		geometry.Point{X: 100, Y: 300},
		geometry.Point{X: 100, Y: 100},
	)
}

func TestCanvas_StrokeAndEraser(t *testing.T) {
	c := New(400, 400)

	c.Apply(mustStroke(t, drawing.ToolPencil, red, 8,
		geometry.Point{X: 50, Y: 200}, geometry.Point{X: 350, Y: 200}))

	mid, ok := c.ColorAt(geometry.Point{X: 200, Y: 200})
	require.True(t, ok)
	assert.Equal(t, red.RGBA(), mid)

	c.Apply(mustStroke(t, drawing.ToolEraser, red, 20,
		geometry.Point{X: 50, Y: 200}, geometry.Point{X: 350, Y: 200}))

	mid, ok = c.ColorAt(geometry.Point{X: 200, Y: 200})
	require.True(t, ok)
	assert.Equal(t, white, mid)
}

func TestCanvas_FillAt_EmitsWorldSeededOp(t *testing.T) {
	c := New(400, 400)
	c.SetView(geometry.Transform{Offset: geometry.Point{X: -60, Y: -60}, Scale: 1})
	c.Apply(squareOutline(t, drawing.RGB{}))

	// World (200,200) is at screen (140,140) under this view.
	op, ok := c.FillAt(geometry.Point{X: 140, Y: 140}, red)

	require.True(t, ok)
	require.True(t, op.IsFill())
	assert.InDelta(t, 200, op.Seed.X, 1e-9)
	assert.InDelta(t, 200, op.Seed.Y, 1e-9)

	got, ok := c.ColorAt(geometry.Point{X: 200, Y: 200})
	require.True(t, ok)
	assert.Equal(t, red.RGBA(), got)
}

func TestCanvas_FillAt_RedundantFillEmitsNothing(t *testing.T) {
	c := New(400, 400)
	c.Apply(squareOutline(t, drawing.RGB{}))

	_, ok := c.FillAt(geometry.Point{X: 200, Y: 200}, red)
	require.True(t, ok)

	// Same color again: the region is already red, nothing to transmit.
	_, ok = c.FillAt(geometry.Point{X: 200, Y: 200}, red)
	assert.False(t, ok)
}

func TestCanvas_FillAt_SeedOutsideWorldBounds(t *testing.T) {
	c := New(400, 400)
	c.SetView(geometry.Transform{Offset: geometry.Point{X: 200, Y: 200}, Scale: 1})

	// Screen (100,100) resolves to world (-100,-100), off the canvas.
	_, ok := c.FillAt(geometry.Point{X: 100, Y: 100}, red)

	assert.False(t, ok)
}

func TestCanvas_FillDeterminismAcrossViewports(t *testing.T) {
	// Two participants with different pan/zoom share the same op log. A
	// fill issued by one must produce the same filled region, relative to
	// the drawing, on the other.
	issuer := New(400, 400)
	viewer := New(400, 400)
	viewer.SetView(geometry.Transform{Offset: geometry.Point{X: 40, Y: 25}, Scale: 0.5})

	outline := squareOutline(t, drawing.RGB{})
	issuer.Apply(outline)
	viewer.Apply(outline)

	seedWorld := geometry.Point{X: 200, Y: 200}
	op, ok := issuer.FillAt(issuer.View().WorldToScreen(seedWorld), blue)
	require.True(t, ok)

	viewer.Apply(op)

	inside := []geometry.Point{{X: 150, Y: 150}, {X: 200, Y: 200}, {X: 250, Y: 250}}
	outside := []geometry.Point{{X: 50, Y: 50}, {X: 350, Y: 200}}

	for _, p := range inside {
		for name, c := range map[string]*Canvas{"issuer": issuer, "viewer": viewer} {
			got, ok := c.ColorAt(p)
			require.True(t, ok)
			assert.Equal(t, blue.RGBA(), got, "%s at %+v", name, p)
		}
	}
	for _, p := range outside {
		for name, c := range map[string]*Canvas{"issuer": issuer, "viewer": viewer} {
			got, ok := c.ColorAt(p)
			require.True(t, ok)
			assert.Equal(t, white, got, "%s at %+v", name, p)
		}
	}
}

func TestCanvas_LoadReplaysSnapshotInOrder(t *testing.T) {
	c := New(400, 400)

	ops := []drawing.Op{
		squareOutline(t, drawing.RGB{}),
		mustStroke(t, drawing.ToolPencil, red, 6,
			geometry.Point{X: 150, Y: 200}, geometry.Point{X: 250, Y: 200}),
	}
	c.Load(ops)

	got, ok := c.ColorAt(geometry.Point{X: 200, Y: 200})
	require.True(t, ok)
	assert.Equal(t, red.RGBA(), got)

	// Loading an empty log is the cleared-canvas state.
	c.Load(nil)
	got, ok = c.ColorAt(geometry.Point{X: 200, Y: 200})
	require.True(t, ok)
	assert.Equal(t, white, got)
}
