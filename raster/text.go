// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/helix"
	"github.com/gogpu/helix/internal/path"
)

// FillText draws s with its baseline starting at (x, y) in the fill color.
//
// With a Shaper (see WithShaper) the shaped glyph outlines are filled like
// any other path. Otherwise glyphs of the bitmap face are rendered at the
// face's native size into an alpha mask, which is scaled to the
// supersampled buffer before compositing. Masks are kept in an LRU cache
// until the next Begin.
func (c *Canvas) FillText(s string, x, y float64) error {
	if c.img == nil {
		return ErrNotBegun
	}
	if s == "" || math.IsNaN(x+y) || math.IsInf(x+y, 0) {
		return nil
	}

	if c.opts.shaper != nil {
		return c.fillShapedText(s, x, y)
	}

	tm := c.masks.GetOrCreate(s, func() textMask { return c.renderMask(s) })
	if tm.mask == nil {
		return nil
	}

	k := c.scale
	origin := image.Pt(int(math.Round(x*k)), int(math.Round((y-float64(tm.ascent))*k)))
	dst := image.Rectangle{Min: origin, Max: origin.Add(tm.mask.Bounds().Size())}
	if !dst.Overlaps(c.img.Bounds()) {
		return nil
	}
	draw.DrawMask(c.img, dst, image.NewUniform(c.paint(c.state.fill)), image.Point{}, tm.mask, image.Point{}, draw.Over)
	return nil
}

// textMask is a cached FillText mask, already scaled to the buffer.
type textMask struct {
	mask   *image.Alpha
	ascent int
}

func (c *Canvas) renderMask(s string) textMask {
	mask, ascent := renderText(c.opts.face, s)
	if mask == nil {
		return textMask{}
	}
	if k := c.scale; k != 1 {
		b := mask.Bounds()
		scaled := image.NewAlpha(image.Rect(0, 0,
			int(math.Round(float64(b.Dx())*k)),
			int(math.Round(float64(b.Dy())*k))))
		draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), mask, b, draw.Src, nil)
		mask = scaled
	}
	return textMask{mask: mask, ascent: ascent}
}

// renderText draws s into an alpha mask whose top edge is ascent pixels
// above the baseline.
func renderText(face font.Face, s string) (*image.Alpha, int) {
	metrics := face.Metrics()
	ascent, descent := metrics.Ascent.Ceil(), metrics.Descent.Ceil()
	advance := font.MeasureString(face, s).Ceil()
	if advance <= 0 || ascent+descent <= 0 {
		return nil, 0
	}

	mask := image.NewAlpha(image.Rect(0, 0, advance, ascent+descent))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(s)
	return mask, ascent
}

// fillShapedText fills the outlines of s laid out by the canvas shaper.
func (c *Canvas) fillShapedText(s string, x, y float64) error {
	glyphs := path.New(c.opts.tolerance)
	if err := c.opts.shaper.Outline(glyphs, s, c.device(x, y), c.scale); err != nil {
		return err
	}
	var polys [][]helix.Point
	for _, sp := range glyphs.Subpaths() {
		polys = append(polys, sp.Points)
	}
	c.fillPolygons(polys, c.state.fill)
	return nil
}

// MeasureText returns the advance width of s in surface units.
func (c *Canvas) MeasureText(s string) float64 {
	if c.opts.shaper != nil {
		return c.opts.shaper.Advance(s)
	}
	adv := font.MeasureString(c.opts.face, s)
	return float64(adv) / 64
}
