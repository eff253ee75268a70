package drawing

import (
	"fmt"

	"github.com/WahpiTrex/Draw2Gather/geometry"
)

// World bounds of the shared canvas. Drawing coordinates live in
// [0, WorldWidth] x [0, WorldHeight] regardless of any viewer's viewport.
const (
	WorldWidth  = 10000
	WorldHeight = 10000
)

type Tool string

const (
	ToolPencil Tool = "pencil"
	ToolEraser Tool = "eraser"
	ToolBucket Tool = "bucket"
)

// Op is one immutable, replayable drawing action: a stroke (pencil/eraser)
// or a region fill (bucket). The Tool field discriminates the union, which
// is also its wire encoding.
//
// A fill carries only its world-space seed. Screen coordinates, scale and
// viewport size never appear in an Op: the issuer resolves its pointer
// position to world space once, before transmission, so every receiver can
// replay the op through its own view transform.
type Op struct {
	Tool   Tool             `json:"tool"`
	Color  RGB              `json:"color"`
	Width  float64          `json:"size,omitempty"`
	Points []geometry.Point `json:"points,omitempty"`
	Seed   *geometry.Point  `json:"seed,omitempty"`
}

// NewStroke builds a validated stroke op. Single-point strokes are never
// emitted: the issuing side accumulates points and drops clicks that never
// moved, so fewer than two points is a caller bug.
func NewStroke(tool Tool, color RGB, width float64, points []geometry.Point) (Op, error) {
	op := Op{
		Tool:   tool,
		Color:  color,
		Width:  width,
		Points: points,
	}
	if err := op.Validate(); err != nil {
		return Op{}, err
	}
	return op, nil
}

// NewFill builds a fill op from a world-space seed.
func NewFill(color RGB, seed geometry.Point) (Op, error) {
	op := Op{
		Tool:  ToolBucket,
		Color: color,
		Seed:  &seed,
	}
	if err := op.Validate(); err != nil {
		return Op{}, err
	}
	return op, nil
}

func (op Op) IsStroke() bool {
	return op.Tool == ToolPencil || op.Tool == ToolEraser
}

func (op Op) IsFill() bool {
	return op.Tool == ToolBucket
}

// Validate checks that the op is self-contained and replayable. The server
// runs it on every decoded op so a malformed payload is discarded instead of
// entering a room log.
func (op Op) Validate() error {
	switch {
	case op.IsStroke():
		if len(op.Points) < 2 {
			return fmt.Errorf("%w: stroke needs at least 2 points, got %d", ErrInvalidOperation, len(op.Points))
		}
		if op.Width <= 0 {
			return fmt.Errorf("%w: stroke width %v", ErrInvalidOperation, op.Width)
		}
		return nil
	case op.IsFill():
		if op.Seed == nil {
			return fmt.Errorf("%w: fill without seed", ErrInvalidOperation)
		}
		if !InBounds(*op.Seed) {
			return fmt.Errorf("%w: fill seed (%v, %v)", ErrOutOfBounds, op.Seed.X, op.Seed.Y)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown tool %q", ErrInvalidOperation, op.Tool)
	}
}

// InBounds reports whether a world point lies on the canvas.
func InBounds(p geometry.Point) bool {
	return p.X >= 0 && p.X <= WorldWidth && p.Y >= 0 && p.Y <= WorldHeight
}
