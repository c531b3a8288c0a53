package helix

// Surface is the drawing target the compositor renders onto.
//
// It is a small, stateful, canvas-like API: style setters change the
// current state, path calls build the current path, and Stroke/Fill paint
// it. Save and Restore push and pop the style state (fill color, stroke
// color, line width, alpha).
//
// Angles are in radians. Surfaces are y-down, so increasing angles in Arc
// run clockwise on screen. Arc connects the current point to the start of
// the arc with a straight line when the path already has a current point.
//
// Errors returned by FillRect, Stroke and Fill are propagated by the
// compositor unchanged. Surfaces are not safe for concurrent use.
type Surface interface {
	SetFillColor(c RGBA)
	SetStrokeColor(c RGBA)
	SetLineWidth(w float64)

	// SetAlpha sets the global alpha multiplied into every paint operation.
	SetAlpha(a float64)

	FillRect(x, y, w, h float64) error

	// BeginPath discards the current path.
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, r, start, end float64)

	// Stroke paints the outline of the current path. The path is kept.
	Stroke() error

	// Fill paints the interior of the current path. The path is kept.
	Fill() error

	Save()
	Restore()
}

// TextSurface is a Surface that can also draw text.
// The compositor draws the optional notice only on surfaces that implement it.
type TextSurface interface {
	Surface

	// FillText draws s with its baseline-left corner near (x, y) in the
	// current fill color.
	FillText(s string, x, y float64) error
}

// isolate brackets draw in a Save/Restore pair. Restore runs on every exit
// path, including a panic from the surface.
func isolate(s Surface, draw func() error) error {
	s.Save()
	defer s.Restore()
	return draw()
}

// polyline draws the points at(0) through at(n) as one connected path with
// a single stroke. n below 1 draws nothing.
func polyline(s Surface, n int, at func(i int) Point) error {
	if n < 1 {
		return nil
	}
	s.BeginPath()
	p := at(0)
	s.MoveTo(p.X, p.Y)
	for i := 1; i <= n; i++ {
		p = at(i)
		s.LineTo(p.X, p.Y)
	}
	return s.Stroke()
}
