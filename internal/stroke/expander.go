package stroke

import (
	"math"

	"github.com/gogpu/helix"
	"github.com/gogpu/helix/internal/path"
)

// Cap specifies the shape of open subpath ends.
type Cap int

const (
	// CapButt ends the stroke exactly at the endpoint.
	CapButt Cap = iota
	// CapRound adds a semicircle of diameter Width.
	CapRound
	// CapSquare extends the stroke by Width/2 beyond the endpoint.
	CapSquare
)

// Join specifies the shape of corners between segments.
type Join int

const (
	// JoinMiter extends the outer edges until they meet, up to MiterLimit.
	JoinMiter Join = iota
	// JoinRound fills the corner with a circular arc.
	JoinRound
	// JoinBevel cuts the corner with a straight line.
	JoinBevel
)

// Style defines how a path is stroked.
type Style struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64

	// Tolerance is the flatness of round joins and caps.
	Tolerance float64
}

// DefaultStyle returns the default style: 1 unit wide, butt caps, miter
// joins limited to 10.
func DefaultStyle() Style {
	return Style{
		Width:      1.0,
		Cap:        CapButt,
		Join:       JoinMiter,
		MiterLimit: 10.0,
		Tolerance:  0.1,
	}
}

// Expand returns the outline polygons of the stroked subpaths.
// A non-positive or non-finite width produces no outline.
func Expand(subpaths []path.Subpath, style Style) [][]helix.Point {
	if !(style.Width > 0) || math.IsInf(style.Width, 0) {
		return nil
	}
	if !(style.Tolerance > 0) {
		style.Tolerance = 0.1
	}
	e := expander{style: style, half: style.Width / 2}
	for _, sp := range subpaths {
		pts := dedupe(sp.Points)
		switch {
		case len(pts) == 1:
			e.dot(pts[0])
		case sp.Closed && len(pts) >= 3:
			e.closed(pts)
		case len(pts) >= 2:
			e.open(pts)
		}
	}
	return e.out
}

type expander struct {
	style Style
	half  float64
	out   [][]helix.Point

	forward  []helix.Point
	backward []helix.Point
}

// dedupe drops consecutive duplicate points, including a closing point
// equal to the first.
func dedupe(pts []helix.Point) []helix.Point {
	out := make([]helix.Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 2 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	return out
}

// normal returns tangent t rotated by +90 degrees and scaled to half the
// width. The forward offset is p-normal, the backward offset p+normal.
func (e *expander) normal(t helix.Point) helix.Point {
	return helix.Pt(-t.Y, t.X).Mul(e.half / t.Length())
}

func (e *expander) open(pts []helix.Point) {
	e.forward = e.forward[:0]
	e.backward = e.backward[:0]

	first := pts[1].Sub(pts[0])
	n0 := e.normal(first)
	e.forward = append(e.forward, pts[0].Sub(n0))
	e.backward = append(e.backward, pts[0].Add(n0))

	for i := 1; i < len(pts)-1; i++ {
		e.join(pts[i], pts[i].Sub(pts[i-1]), pts[i+1].Sub(pts[i]))
	}

	last := len(pts) - 1
	tEnd := pts[last].Sub(pts[last-1])
	nEnd := e.normal(tEnd)
	e.forward = append(e.forward, pts[last].Sub(nEnd))
	e.backward = append(e.backward, pts[last].Add(nEnd))

	poly := make([]helix.Point, 0, len(e.forward)+len(e.backward)+8)
	poly = append(poly, e.forward...)
	poly = e.cap(poly, pts[last], nEnd.Mul(-1))
	for i := len(e.backward) - 1; i >= 0; i-- {
		poly = append(poly, e.backward[i])
	}
	poly = e.cap(poly, pts[0], n0)
	e.out = append(e.out, poly)
}

func (e *expander) closed(pts []helix.Point) {
	e.forward = e.forward[:0]
	e.backward = e.backward[:0]

	n := len(pts)
	for i := 0; i < n; i++ {
		prev, next := pts[(i+n-1)%n], pts[(i+1)%n]
		e.join(pts[i], pts[i].Sub(prev), next.Sub(pts[i]))
	}

	ring := append([]helix.Point(nil), e.forward...)
	back := make([]helix.Point, len(e.backward))
	for i, p := range e.backward {
		back[len(back)-1-i] = p
	}
	e.out = append(e.out, ring, back)
}

// join emits the corner at p between incoming tangent tin and outgoing
// tangent tout on both offsets.
func (e *expander) join(p, tin, tout helix.Point) {
	nin, nout := e.normal(tin), e.normal(tout)
	cross := tin.X*tout.Y - tin.Y*tout.X
	dot := tin.X*tout.X + tin.Y*tout.Y
	hypot := math.Hypot(cross, dot)

	e.forward = append(e.forward, p.Sub(nin))
	e.backward = append(e.backward, p.Add(nin))

	// Nearly straight: connect the offsets directly.
	joinThresh := 2 * e.style.Tolerance / e.style.Width
	if dot > 0 && math.Abs(cross) < hypot*joinThresh {
		e.forward = append(e.forward, p.Sub(nout))
		e.backward = append(e.backward, p.Add(nout))
		return
	}

	// A positive cross product turns toward +normal, which puts the
	// forward offset on the outside of the corner.
	outerForward := cross > 0
	var outer *[]helix.Point
	var oin, oout helix.Point
	if outerForward {
		outer, oin, oout = &e.forward, nin.Mul(-1), nout.Mul(-1)
		e.backward = append(e.backward, p)
	} else {
		outer, oin, oout = &e.backward, nin, nout
		e.forward = append(e.forward, p)
	}

	switch e.style.Join {
	case JoinMiter:
		s := oin.Add(oout)
		s2 := s.X*s.X + s.Y*s.Y
		// Miter ratio is 1/cos(θ/2) = Width/|s|.
		if s2 > 0 && math.Sqrt(s2)*e.style.MiterLimit >= e.style.Width {
			*outer = append(*outer, p.Add(s.Mul(2*e.half*e.half/s2)))
		}
	case JoinRound:
		*outer = e.arc(*outer, p, oin, math.Atan2(cross, dot))
	}

	e.forward = append(e.forward, p.Sub(nout))
	e.backward = append(e.backward, p.Add(nout))
}

// cap appends the cap at center, starting at center+from and sweeping
// half a turn to center-from.
func (e *expander) cap(poly []helix.Point, center, from helix.Point) []helix.Point {
	switch e.style.Cap {
	case CapRound:
		return e.arc(poly, center, from, math.Pi)
	case CapSquare:
		// The cap extends along from rotated by +90 degrees.
		ext := helix.Pt(-from.Y, from.X)
		return append(poly, center.Add(from).Add(ext), center.Sub(from).Add(ext))
	}
	return poly
}

// arc appends points on the circle around center from center+from,
// sweeping by angle radians. The start point itself is not appended.
func (e *expander) arc(poly []helix.Point, center, from helix.Point, angle float64) []helix.Point {
	r := from.Length()
	steps := arcSteps(r, math.Abs(angle), e.style.Tolerance)
	a0 := math.Atan2(from.Y, from.X)
	for i := 1; i <= steps; i++ {
		a := a0 + angle*float64(i)/float64(steps)
		poly = append(poly, center.Add(helix.Pt(math.Cos(a), math.Sin(a)).Mul(r)))
	}
	return poly
}

// arcSteps returns how many chords approximate an arc of radius r and
// the given sweep within tolerance.
func arcSteps(r, sweep, tolerance float64) int {
	if r <= tolerance {
		return 1
	}
	const maxSteps = 256
	n := math.Ceil(sweep / (2 * math.Acos(1-tolerance/r)))
	switch {
	case !(n < maxSteps):
		return maxSteps
	case n < 1:
		return 1
	}
	return int(n)
}

// dot emits the outline of a zero-length subpath: nothing for butt caps,
// a disc for round caps and an axis-aligned square for square caps.
func (e *expander) dot(p helix.Point) {
	switch e.style.Cap {
	case CapRound:
		from := helix.Pt(e.half, 0)
		poly := []helix.Point{p.Add(from)}
		e.out = append(e.out, e.arc(poly, p, from, 2*math.Pi))
	case CapSquare:
		h := e.half
		e.out = append(e.out, []helix.Point{
			helix.Pt(p.X-h, p.Y-h), helix.Pt(p.X+h, p.Y-h),
			helix.Pt(p.X+h, p.Y+h), helix.Pt(p.X-h, p.Y+h),
		})
	}
}
