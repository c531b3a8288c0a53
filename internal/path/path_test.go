package path

import (
	"math"
	"testing"

	"github.com/gogpu/helix"
)

func TestPathMoveLine(t *testing.T) {
	p := New(0)
	if !p.Empty() {
		t.Fatal("new path should be empty")
	}
	p.MoveTo(helix.Pt(0, 0))
	p.MoveTo(helix.Pt(1, 1))
	p.LineTo(helix.Pt(2, 1))
	p.MoveTo(helix.Pt(5, 5))
	p.LineTo(helix.Pt(6, 6))

	subs := p.Subpaths()
	if len(subs) != 2 {
		t.Fatalf("got %d subpaths, want 2", len(subs))
	}
	if subs[0].Points[0] != helix.Pt(1, 1) {
		t.Errorf("lone MoveTo not replaced: first point %v", subs[0].Points[0])
	}
	if len(subs[1].Points) != 2 {
		t.Errorf("second subpath has %d points, want 2", len(subs[1].Points))
	}
}

func TestPathLineToWithoutMove(t *testing.T) {
	p := New(0)
	p.LineTo(helix.Pt(3, 4))
	cur, ok := p.Current()
	if !ok || cur != helix.Pt(3, 4) {
		t.Errorf("Current() = %v, %v, want (3,4), true", cur, ok)
	}
	if n := len(p.Subpaths()[0].Points); n != 1 {
		t.Errorf("LineTo without MoveTo added %d points, want 1", n)
	}
}

func TestPathCloseStartsNewSubpath(t *testing.T) {
	p := New(0)
	p.Rect(0, 0, 10, 5)
	p.LineTo(helix.Pt(20, 20))

	subs := p.Subpaths()
	if len(subs) != 2 || !subs[0].Closed || subs[1].Closed {
		t.Fatalf("subpaths = %+v", subs)
	}
	if subs[1].Points[0] != helix.Pt(0, 0) {
		t.Errorf("subpath after Close starts at %v, want (0,0)", subs[1].Points[0])
	}
}

func TestPathArcCircle(t *testing.T) {
	p := New(0.01)
	p.Arc(helix.Pt(50, 50), 20, 0, 2*math.Pi)

	subs := p.Subpaths()
	if len(subs) != 1 {
		t.Fatalf("got %d subpaths, want 1", len(subs))
	}
	pts := subs[0].Points
	if len(pts) < 16 {
		t.Fatalf("circle flattened to %d points", len(pts))
	}
	first, last := pts[0], pts[len(pts)-1]
	if first.Distance(helix.Pt(70, 50)) > 1e-9 || last.Distance(first) > 1e-9 {
		t.Errorf("circle starts at %v and ends at %v", first, last)
	}
	for _, pt := range pts {
		if d := math.Abs(pt.Distance(helix.Pt(50, 50)) - 20); d > 0.05 {
			t.Fatalf("point %v is %v off the circle", pt, d)
		}
	}
}

func TestPathArcJoinsCurrentPoint(t *testing.T) {
	p := New(0)
	p.MoveTo(helix.Pt(0, 0))
	p.Arc(helix.Pt(10, 0), 5, math.Pi/2, math.Pi)
	pts := p.Subpaths()[0].Points
	if pts[1].Distance(helix.Pt(10, 5)) > 1e-9 {
		t.Errorf("arc start = %v, want (10,5)", pts[1])
	}
	if end := pts[len(pts)-1]; end.Distance(helix.Pt(5, 0)) > 1e-9 {
		t.Errorf("arc end = %v, want (5,0)", end)
	}
}

func TestPathArcDegenerate(t *testing.T) {
	tests := []struct {
		name          string
		r, start, end float64
		wantPoints    int
	}{
		{"zero radius", 0, 0, math.Pi, 1},
		{"nan radius", math.NaN(), 0, math.Pi, 1},
		{"zero sweep", 5, 1, 1, 1},
		{"nan angle", 5, math.NaN(), 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(0)
			p.Arc(helix.Pt(0, 0), tt.r, tt.start, tt.end)
			if got := len(p.Subpaths()[0].Points); got != tt.wantPoints {
				t.Errorf("got %d points, want %d", got, tt.wantPoints)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	lo, hi, ok := Bounds([][]helix.Point{{{X: 1, Y: 5}, {X: -2, Y: 3}}, {{X: 4, Y: -1}}})
	if !ok || lo != helix.Pt(-2, -1) || hi != helix.Pt(4, 5) {
		t.Errorf("Bounds = %v %v %v", lo, hi, ok)
	}
	if _, _, ok := Bounds(nil); ok {
		t.Error("Bounds(nil) should not be ok")
	}
	if Finite([]helix.Point{{X: math.Inf(1)}}) {
		t.Error("Finite should reject infinities")
	}
}

func TestPathQuadTo(t *testing.T) {
	p := New(0.01)
	p.MoveTo(helix.Pt(0, 0))
	p.QuadTo(helix.Pt(10, 10), helix.Pt(20, 0))

	pts := p.Subpaths()[0].Points
	if len(pts) < 4 {
		t.Fatalf("quad flattened to %d points, want a curve", len(pts))
	}
	if last := pts[len(pts)-1]; last != helix.Pt(20, 0) {
		t.Errorf("last point = %v, want (20,0)", last)
	}
	// The curve peaks at (10, 5); every point lies under it.
	peak := 0.0
	for _, pt := range pts {
		x := pt.X / 20
		want := 2 * x * (1 - x) * 10
		if math.Abs(pt.Y-want) > 0.05 {
			t.Errorf("point %v off the parabola y = %v", pt, want)
		}
		peak = math.Max(peak, pt.Y)
	}
	if peak < 4.9 || peak > 5+1e-9 {
		t.Errorf("peak y = %v, want about 5", peak)
	}
}

func TestPathQuadToWithoutCurrentPoint(t *testing.T) {
	p := New(0)
	p.QuadTo(helix.Pt(1, 1), helix.Pt(2, 0))
	pts := p.Subpaths()[0].Points
	if pts[0] != helix.Pt(1, 1) || pts[len(pts)-1] != helix.Pt(2, 0) {
		t.Errorf("points = %v, want a curve from (1,1) to (2,0)", pts)
	}
}
