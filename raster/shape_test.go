// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"
	"testing"

	"github.com/gogpu/helix"
	"github.com/gogpu/helix/internal/path"
)

func goRegular(t *testing.T) *Shaper {
	t.Helper()
	s, err := GoRegular(DefaultTextSize)
	if err != nil {
		t.Fatalf("GoRegular() error = %v", err)
	}
	return s
}

func outlineBounds(t *testing.T, s *Shaper, text string, origin helix.Point, scale float64) (lo, hi helix.Point) {
	t.Helper()
	p := path.New(0)
	if err := s.Outline(p, text, origin, scale); err != nil {
		t.Fatalf("Outline(%q) error = %v", text, err)
	}
	var polys [][]helix.Point
	for _, sp := range p.Subpaths() {
		if !sp.Closed {
			t.Errorf("Outline(%q) left an open subpath", text)
		}
		polys = append(polys, sp.Points)
	}
	lo, hi, ok := path.Bounds(polys)
	if !ok {
		t.Fatalf("Outline(%q) produced no points", text)
	}
	return lo, hi
}

func TestNewShaperErrors(t *testing.T) {
	tests := []struct {
		name string
		ttf  []byte
		size float64
	}{
		{"zero size", nil, 0},
		{"negative size", nil, -3},
		{"NaN size", nil, math.NaN()},
		{"not a font", []byte("definitely not a font"), 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewShaper(tt.ttf, tt.size); err == nil {
				t.Error("NewShaper() error = nil, want error")
			}
		})
	}
}

func TestShaperAdvance(t *testing.T) {
	s := goRegular(t)
	if got := s.Size(); got != DefaultTextSize {
		t.Errorf("Size() = %v, want %v", got, DefaultTextSize)
	}
	if got := s.Advance(""); got != 0 {
		t.Errorf("Advance(\"\") = %v, want 0", got)
	}
	hello, world := s.Advance("hello"), s.Advance("hello world")
	if !(hello > 0) || !(world > hello) {
		t.Errorf("Advance(hello) = %v, Advance(hello world) = %v, want 0 < first < second", hello, world)
	}

	big, err := GoRegular(2 * DefaultTextSize)
	if err != nil {
		t.Fatal(err)
	}
	if got := big.Advance("hello"); math.Abs(got-2*hello) > 0.1 {
		t.Errorf("Advance at double size = %v, want about %v", got, 2*hello)
	}
}

func TestShaperOutlineSitsOnBaseline(t *testing.T) {
	s := goRegular(t)
	origin := helix.Pt(10, 20)
	lo, hi := outlineBounds(t, s, "H", origin, 1)

	if lo.X < origin.X || hi.X > origin.X+s.Advance("H") {
		t.Errorf("H spans x [%v, %v], want inside [10, %v]", lo.X, hi.X, 10+s.Advance("H"))
	}
	if math.Abs(hi.Y-origin.Y) > 0.05 {
		t.Errorf("H bottom = %v, want baseline %v", hi.Y, origin.Y)
	}
	if lo.Y < origin.Y-DefaultTextSize || lo.Y > origin.Y-DefaultTextSize/2 {
		t.Errorf("H top = %v, want a cap height above the baseline", lo.Y)
	}
}

func TestShaperOutlineScale(t *testing.T) {
	s := goRegular(t)
	lo1, hi1 := outlineBounds(t, s, "HI", helix.Point{}, 1)
	lo2, hi2 := outlineBounds(t, s, "HI", helix.Point{}, 2)

	w1, w2 := hi1.X-lo1.X, hi2.X-lo2.X
	if math.Abs(w2/w1-2) > 0.05 {
		t.Errorf("width at scale 2 = %v, want twice %v", w2, w1)
	}
	h1, h2 := hi1.Y-lo1.Y, hi2.Y-lo2.Y
	if math.Abs(h2/h1-2) > 0.05 {
		t.Errorf("height at scale 2 = %v, want twice %v", h2, h1)
	}
}

func TestShaperOutlineBlank(t *testing.T) {
	s := goRegular(t)
	for _, text := range []string{"", "   "} {
		p := path.New(0)
		if err := s.Outline(p, text, helix.Pt(4, 4), 1); err != nil {
			t.Errorf("Outline(%q) error = %v", text, err)
		}
		if !p.Empty() {
			t.Errorf("Outline(%q) has %d subpaths, want 0", text, len(p.Subpaths()))
		}
	}
}

func TestShaperOutlineFollowsPen(t *testing.T) {
	s := goRegular(t)
	loH, _ := outlineBounds(t, s, "H", helix.Point{}, 1)
	loSpaced, _ := outlineBounds(t, s, " H", helix.Point{}, 1)
	if got, want := loSpaced.X-loH.X, s.Advance(" "); math.Abs(got-want) > 0.5 {
		t.Errorf("leading space moved H by %v, want about %v", got, want)
	}
}

func TestFillTextShaped(t *testing.T) {
	s := goRegular(t)
	c := newTestCanvas(t, 80, 24, WithSupersample(2), WithShaper(s))
	c.SetFillColor(helix.White)
	if err := c.FillText("HELIX", 4, 18); err != nil {
		t.Fatalf("FillText() error = %v", err)
	}

	ink := 0
	b := c.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if alphaAt(c, x, y) == 0 {
				continue
			}
			ink++
			if x < 2*4-1 || y > 2*18+1 {
				t.Fatalf("shaped text inked (%d,%d) left of the pen or below the baseline", x, y)
			}
		}
	}
	if ink == 0 {
		t.Error("FillText drew nothing")
	}
	if c.masks.Len() != 0 {
		t.Errorf("mask cache has %d entries, want 0 for shaped text", c.masks.Len())
	}
	if got, want := c.MeasureText("HELIX"), s.Advance("HELIX"); got != want {
		t.Errorf("MeasureText = %v, want %v", got, want)
	}
}

func TestWithShaperNilRestoresBitmapFace(t *testing.T) {
	c := newTestCanvas(t, 40, 20, WithShaper(goRegular(t)), WithShaper(nil))
	if got := c.MeasureText("ok"); got != 14 {
		t.Errorf("MeasureText = %v, want 14", got)
	}
}
