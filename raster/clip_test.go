// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"testing"

	"github.com/gogpu/helix"
)

func TestClipPolygon(t *testing.T) {
	r := image.Rect(0, 0, 10, 10)

	inner := []helix.Point{{X: 1, Y: 1}, {X: 5, Y: 1}, {X: 5, Y: 5}}
	if got := clipPolygon(inner, r); len(got) != 3 {
		t.Errorf("polygon inside the window changed: %v", got)
	}

	outside := []helix.Point{{X: 20, Y: 20}, {X: 30, Y: 20}, {X: 30, Y: 30}}
	if got := clipPolygon(outside, r); len(got) != 0 {
		t.Errorf("polygon outside the window kept %d points", len(got))
	}

	// A square overlapping the top-left corner clips to the 5x5 corner.
	corner := []helix.Point{{X: -5, Y: -5}, {X: 5, Y: -5}, {X: 5, Y: 5}, {X: -5, Y: 5}}
	got := clipPolygon(corner, r)
	var area float64
	for i, p := range got {
		q := got[(i+1)%len(got)]
		area += p.X*q.Y - q.X*p.Y
		if p.X < 0 || p.Y < 0 || p.X > 10 || p.Y > 10 {
			t.Errorf("clipped point %v outside the window", p)
		}
	}
	if area/2 != 25 {
		t.Errorf("clipped area = %v, want 25", area/2)
	}
}
