package geometry

// Point is a position in either world or screen space. All drawing data is
// stored in world space; screen space only exists at the edges, when input
// is captured or pixels are painted.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

const (
	MinScale = 0.1
	MaxScale = 5
)

// Transform maps world coordinates to one viewer's screen.
type Transform struct {
	Offset Point
	Scale  float64
}

func NewTransform() Transform {
	return Transform{Scale: 1}
}

func (t Transform) WorldToScreen(p Point) Point {
	return Point{
		X: p.X*t.Scale + t.Offset.X,
		Y: p.Y*t.Scale + t.Offset.Y,
	}
}

func (t Transform) ScreenToWorld(p Point) Point {
	return Point{
		X: (p.X - t.Offset.X) / t.Scale,
		Y: (p.Y - t.Offset.Y) / t.Scale,
	}
}

// Pan shifts the view by a screen-space delta.
func (t Transform) Pan(dx, dy float64) Transform {
	t.Offset.X += dx
	t.Offset.Y += dy
	return t
}

// ZoomAt rescales the view by factor while keeping the world point under the
// screen anchor stationary.
func (t Transform) ZoomAt(factor float64, anchor Point) Transform {
	world := t.ScreenToWorld(anchor)

	scale := clampScale(t.Scale * factor)
	if scale == t.Scale {
		return t
	}

	t.Scale = scale
	t.Offset.X = anchor.X - world.X*scale
	t.Offset.Y = anchor.Y - world.Y*scale
	return t
}

func clampScale(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}
