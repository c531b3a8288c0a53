package helix

import "math"

// Layer alphas. They are surface state, not color math: palette colors are
// still passed to the surface unmodified.
const (
	VesicaAlpha = 0.75
	TreeAlpha   = 0.9
	SpiralAlpha = 0.85
	HelixAlpha  = 0.9
)

// vesicaGeometry derives the vesica field measures from the surface size.
func vesicaGeometry(width, height float64, num Numerology) (radius, step, pitch float64) {
	radius = math.Min(width, height) / float64(num.Three)
	step = radius / float64(num.Seven)
	pitch = step * float64(num.Nine)
	return radius, step, pitch
}

// nextStop advances a grid coordinate by pitch and reports whether the
// result is still below limit. A degenerate pitch (zero, negative, NaN, or
// too small to change v) ends the run, so at most one stop is visited.
func nextStop(v, limit, pitch float64) (float64, bool) {
	if !(pitch > 0) {
		return v, false
	}
	next := v + pitch
	if next == v {
		return v, false
	}
	return next, next < limit
}

// gridCount counts the stops visited from start while below limit.
func gridCount(start, limit, pitch float64) int {
	n := 0
	for v, ok := start, start < limit; ok; v, ok = nextStop(v, limit, pitch) {
		n++
	}
	return n
}

// VesicaGrid returns the number of rows and columns of the vesica field
// for a surface of the given size. Each cell draws two circles.
func VesicaGrid(width, height float64, num Numerology) (rows, cols int) {
	radius, _, pitch := vesicaGeometry(width, height, num)
	return gridCount(radius, height, pitch), gridCount(radius, width, pitch)
}

// DrawVesicaField strokes a grid of overlapping circle pairs.
//
// The base radius is min(width, height)/THREE. Each cell centered at (x, y)
// strokes two circles of that radius at x-step and x+step, where step is
// radius/SEVEN; cells repeat every step*NINE in both directions, starting
// at the base radius.
func DrawVesicaField(s Surface, width, height float64, color RGBA, num Numerology) error {
	radius, step, pitch := vesicaGeometry(width, height, num)

	return isolate(s, func() error {
		s.SetStrokeColor(color)
		s.SetLineWidth(1)
		s.SetAlpha(VesicaAlpha)

		for y, row := radius, radius < height; row; y, row = nextStop(y, height, pitch) {
			for x, col := radius, radius < width; col; x, col = nextStop(x, width, pitch) {
				if err := strokeCircle(s, x-step, y, radius); err != nil {
					return err
				}
				if err := strokeCircle(s, x+step, y, radius); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func strokeCircle(s Surface, x, y, r float64) error {
	s.BeginPath()
	s.Arc(x, y, r, 0, 2*math.Pi)
	return s.Stroke()
}
