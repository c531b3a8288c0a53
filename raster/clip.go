// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"

	"github.com/gogpu/helix"
)

// clipEdge identifies one side of the clip window.
type clipEdge int

const (
	edgeLeft clipEdge = iota
	edgeRight
	edgeTop
	edgeBottom
)

// clipPolygon clips poly to r with the Sutherland-Hodgman algorithm.
//
// Clipping each polygon to a convex window leaves the winding number of
// every point inside the window unchanged, so the union of clipped
// polygons rasterizes exactly like the unclipped set within r.
func clipPolygon(poly []helix.Point, r image.Rectangle) []helix.Point {
	if inside(poly, r) {
		return poly
	}
	out := poly
	for _, e := range [...]clipEdge{edgeLeft, edgeRight, edgeTop, edgeBottom} {
		if len(out) == 0 {
			return nil
		}
		out = clipAgainst(out, r, e)
	}
	return out
}

func inside(poly []helix.Point, r image.Rectangle) bool {
	for _, p := range poly {
		if !keep(p, r, edgeLeft) || !keep(p, r, edgeRight) || !keep(p, r, edgeTop) || !keep(p, r, edgeBottom) {
			return false
		}
	}
	return true
}

// keep reports whether p is on the inner side of edge e.
func keep(p helix.Point, r image.Rectangle, e clipEdge) bool {
	switch e {
	case edgeLeft:
		return p.X >= float64(r.Min.X)
	case edgeRight:
		return p.X <= float64(r.Max.X)
	case edgeTop:
		return p.Y >= float64(r.Min.Y)
	default:
		return p.Y <= float64(r.Max.Y)
	}
}

// intersect returns the point where segment ab crosses edge e.
func intersect(a, b helix.Point, r image.Rectangle, e clipEdge) helix.Point {
	switch e {
	case edgeLeft, edgeRight:
		x := float64(r.Min.X)
		if e == edgeRight {
			x = float64(r.Max.X)
		}
		t := (x - a.X) / (b.X - a.X)
		return helix.Pt(x, a.Y+t*(b.Y-a.Y))
	default:
		y := float64(r.Min.Y)
		if e == edgeBottom {
			y = float64(r.Max.Y)
		}
		t := (y - a.Y) / (b.Y - a.Y)
		return helix.Pt(a.X+t*(b.X-a.X), y)
	}
}

func clipAgainst(poly []helix.Point, r image.Rectangle, e clipEdge) []helix.Point {
	out := make([]helix.Point, 0, len(poly)+4)
	prev := poly[len(poly)-1]
	prevIn := keep(prev, r, e)
	for _, cur := range poly {
		curIn := keep(cur, r, e)
		switch {
		case curIn && prevIn:
			out = append(out, cur)
		case curIn:
			out = append(out, intersect(prev, cur, r, e), cur)
		case prevIn:
			out = append(out, intersect(prev, cur, r, e))
		}
		prev, prevIn = cur, curIn
	}
	return out
}
