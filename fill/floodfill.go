// Package fill implements the region-fill engine used by the bucket tool.
//
// Every participant runs the same algorithm against its own rendered raster:
// the fill op only carries a world-space seed and a color, and because all
// rasters contain the same strokes applied in the same log order, the
// independently computed regions come out visually consistent.
package fill

import (
	"image"
	"image/color"
)

const (
	// seedTolerance decides whether a pixel belongs to the seed's region.
	// Comparisons are always against the original seed color, never against
	// progressively filled neighbors, so worklist order does not matter.
	seedTolerance = 32

	// targetTolerance guards against redundant fills: seeding on a pixel
	// already this close to the target color is a no-op.
	targetTolerance = 10

	// MaxPixels bounds one invocation on degenerate near-uniform rasters.
	// A clipped fill is accepted as final, not retried.
	MaxPixels = 500000
)

// Result describes what a fill did to the raster.
type Result struct {
	Filled  int
	Clipped bool
}

// Flood runs a 4-connected region fill on img from seed, painting target at
// full opacity. It reports ok=false, touching nothing, when the seed lies
// outside the raster or its color already matches the target within
// targetTolerance.
func Flood(img *image.RGBA, seed image.Point, target color.RGBA) (Result, bool) {
	bounds := img.Bounds()
	if !seed.In(bounds) {
		return Result{}, false
	}

	origin := img.RGBAAt(seed.X, seed.Y)
	if match(origin, target, targetTolerance) {
		return Result{}, false
	}

	w := bounds.Dx()
	h := bounds.Dy()
	visited := make([]bool, w*h)
	index := func(p image.Point) int {
		return (p.Y-bounds.Min.Y)*w + (p.X - bounds.Min.X)
	}

	target.A = 255
	stack := []image.Point{seed}
	res := Result{}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !p.In(bounds) || visited[index(p)] {
			continue
		}
		if !match(img.RGBAAt(p.X, p.Y), origin, seedTolerance) {
			continue
		}

		// Only an actually paintable pixel past the budget makes the
		// fill a clipped one; a region of exactly MaxPixels is complete.
		if res.Filled >= MaxPixels {
			res.Clipped = true
			break
		}

		visited[index(p)] = true
		img.SetRGBA(p.X, p.Y, target)
		res.Filled++

		stack = append(stack,
			image.Pt(p.X+1, p.Y),
			image.Pt(p.X-1, p.Y),
			image.Pt(p.X, p.Y+1),
			image.Pt(p.X, p.Y-1),
		)
	}

	return res, res.Filled > 0
}

func match(a, b color.RGBA, tolerance int) bool {
	return diff(a.R, b.R) <= tolerance &&
		diff(a.G, b.G) <= tolerance &&
		diff(a.B, b.B) <= tolerance
}

func diff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
