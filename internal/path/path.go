// Package path builds flattened paths for the CPU rasterizer.
//
// Curves are flattened to polylines as they are added, so a Path only ever
// holds straight segments. Callers supply device coordinates; the flatness
// tolerance is in the same units.
package path

import (
	"math"

	"github.com/gogpu/helix"
)

// Tolerance is the default maximum distance between a curve and its
// flattened polyline.
const Tolerance = 0.1

// Subpath is one connected run of points.
type Subpath struct {
	Points []helix.Point
	Closed bool
}

// Path is a sequence of subpaths.
// The zero value is an empty path using Tolerance.
type Path struct {
	subpaths  []Subpath
	tolerance float64

	// open reports whether the last subpath still accepts points.
	open bool
}

// New returns an empty path with the given flatness tolerance.
// A non-positive tolerance selects Tolerance.
func New(tolerance float64) *Path {
	return &Path{tolerance: tolerance}
}

func (p *Path) tol() float64 {
	if p.tolerance > 0 {
		return p.tolerance
	}
	return Tolerance
}

// Reset discards all subpaths.
func (p *Path) Reset() {
	p.subpaths = p.subpaths[:0]
	p.open = false
}

// Empty reports whether the path has no points.
func (p *Path) Empty() bool {
	return len(p.subpaths) == 0
}

// Subpaths returns the subpaths. The slice is owned by the path.
func (p *Path) Subpaths() []Subpath {
	return p.subpaths
}

// Current returns the last point of the path.
func (p *Path) Current() (helix.Point, bool) {
	if len(p.subpaths) == 0 {
		return helix.Point{}, false
	}
	last := p.subpaths[len(p.subpaths)-1]
	if last.Closed {
		return last.Points[0], true
	}
	return last.Points[len(last.Points)-1], true
}

// MoveTo starts a new subpath at pt.
func (p *Path) MoveTo(pt helix.Point) {
	if p.open {
		last := &p.subpaths[len(p.subpaths)-1]
		if len(last.Points) == 1 {
			// A lone MoveTo is replaced rather than kept as an empty subpath.
			last.Points[0] = pt
			return
		}
	}
	p.subpaths = append(p.subpaths, Subpath{Points: []helix.Point{pt}})
	p.open = true
}

// LineTo extends the current subpath to pt.
// Without a current subpath it behaves like MoveTo.
func (p *Path) LineTo(pt helix.Point) {
	if !p.open {
		if cur, ok := p.Current(); ok {
			p.subpaths = append(p.subpaths, Subpath{Points: []helix.Point{cur}})
			p.open = true
		} else {
			p.MoveTo(pt)
			return
		}
	}
	last := &p.subpaths[len(p.subpaths)-1]
	last.Points = append(last.Points, pt)
}

// CubicTo extends the current subpath with a cubic Bézier curve.
func (p *Path) CubicTo(c1, c2, end helix.Point) {
	start, ok := p.Current()
	if !ok {
		p.MoveTo(c1)
		start = c1
	}
	var pts []helix.Point
	flattenCubicRec(start, c1, c2, end, p.tol(), 0, &pts)
	for _, pt := range pts {
		p.LineTo(pt)
	}
}

// QuadTo extends the current subpath with a quadratic Bézier curve,
// raised to the equivalent cubic.
func (p *Path) QuadTo(ctrl, end helix.Point) {
	start, ok := p.Current()
	if !ok {
		p.MoveTo(ctrl)
		start = ctrl
	}
	c1 := start.Add(ctrl.Sub(start).Mul(2.0 / 3))
	c2 := end.Add(ctrl.Sub(end).Mul(2.0 / 3))
	p.CubicTo(c1, c2, end)
}

// Arc adds a clockwise (in y-down coordinates) circular arc from angle
// start to angle end. A line joins the current point to the start of the
// arc; without a current point the arc begins a new subpath.
//
// A sweep of 2π or more draws a full circle. A non-positive radius adds
// only the center.
func (p *Path) Arc(center helix.Point, radius, start, end float64) {
	if !(radius > 0) {
		p.LineTo(center)
		return
	}

	const twoPi = 2 * math.Pi
	sweep := end - start
	if sweep >= twoPi {
		sweep = twoPi
	} else {
		sweep = math.Mod(sweep, twoPi)
		if sweep < 0 {
			sweep += twoPi
		}
	}

	first := center.Add(helix.Pt(math.Cos(start), math.Sin(start)).Mul(radius))
	if _, ok := p.Current(); ok {
		p.LineTo(first)
	} else {
		p.MoveTo(first)
	}
	if sweep == 0 || math.IsNaN(sweep) {
		return
	}

	// At most 90 degrees per cubic segment.
	n := int(math.Ceil(sweep / (math.Pi / 2)))
	step := sweep / float64(n)
	for i := 0; i < n; i++ {
		a1 := start + float64(i)*step
		p.arcSegment(center, radius, a1, a1+step)
	}
}

// arcSegment adds one cubic approximation of an arc of at most 90 degrees.
func (p *Path) arcSegment(center helix.Point, r, a1, a2 float64) {
	// "Drawing an elliptical arc using polylines, quadratic or cubic Bézier curves", L. Maisonobe.
	t := math.Tan((a2 - a1) / 2)
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*t*t) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	p1 := helix.Pt(center.X+r*cos1, center.Y+r*sin1)
	p2 := helix.Pt(center.X+r*cos2, center.Y+r*sin2)
	c1 := helix.Pt(p1.X-alpha*r*sin1, p1.Y+alpha*r*cos1)
	c2 := helix.Pt(p2.X+alpha*r*sin2, p2.Y-alpha*r*cos2)

	p.CubicTo(c1, c2, p2)
}

// Rect adds a closed axis-aligned rectangle.
func (p *Path) Rect(x, y, w, h float64) {
	p.MoveTo(helix.Pt(x, y))
	p.LineTo(helix.Pt(x+w, y))
	p.LineTo(helix.Pt(x+w, y+h))
	p.LineTo(helix.Pt(x, y+h))
	p.Close()
}

// Close closes the current subpath. The next LineTo starts a new subpath
// at the closed subpath's first point.
func (p *Path) Close() {
	if !p.open {
		return
	}
	p.subpaths[len(p.subpaths)-1].Closed = true
	p.open = false
}

// maxDepth bounds curve subdivision for pathological control points.
const maxDepth = 16

// flattenCubicRec recursively subdivides a cubic Bézier curve and appends
// every segment end point except p0.
func flattenCubicRec(p0, p1, p2, p3 helix.Point, tolerance float64, depth int, points *[]helix.Point) {
	d := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if d < tolerance || depth >= maxDepth || math.IsNaN(d) {
		*points = append(*points, p3)
		return
	}

	// de Casteljau
	q0 := lerp(p0, p1)
	q1 := lerp(p1, p2)
	q2 := lerp(p2, p3)
	r0 := lerp(q0, q1)
	r1 := lerp(q1, q2)
	s := lerp(r0, r1)

	flattenCubicRec(p0, q0, r0, s, tolerance, depth+1, points)
	flattenCubicRec(s, r1, q2, p3, tolerance, depth+1, points)
}

func lerp(a, b helix.Point) helix.Point {
	return helix.Pt((a.X+b.X)/2, (a.Y+b.Y)/2)
}

// distanceToLine returns the distance from p to the segment ab.
func distanceToLine(p, a, b helix.Point) float64 {
	ab := b.Sub(a)
	l2 := ab.X*ab.X + ab.Y*ab.Y
	if l2 < 1e-20 {
		return p.Distance(a)
	}
	ap := p.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / l2
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}

// Bounds returns the bounding box of the given polygons as min and max
// corners. ok is false when there is no finite point.
func Bounds(polys [][]helix.Point) (lo, hi helix.Point, ok bool) {
	lo = helix.Pt(math.Inf(1), math.Inf(1))
	hi = helix.Pt(math.Inf(-1), math.Inf(-1))
	for _, poly := range polys {
		for _, pt := range poly {
			lo.X, lo.Y = math.Min(lo.X, pt.X), math.Min(lo.Y, pt.Y)
			hi.X, hi.Y = math.Max(hi.X, pt.X), math.Max(hi.Y, pt.Y)
			ok = true
		}
	}
	return lo, hi, ok
}

// Finite reports whether every point of poly has finite coordinates.
func Finite(poly []helix.Point) bool {
	for _, pt := range poly {
		if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
			return false
		}
	}
	return true
}
