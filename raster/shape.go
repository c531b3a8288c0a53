// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/helix"
	"github.com/gogpu/helix/internal/path"
)

// DefaultTextSize is the em size, in surface units, of GoRegular.
const DefaultTextSize = 13

// Shaper lays out text with HarfBuzz shaping and draws the glyph outlines
// of the same font. Kerning and ligatures are applied, so the result
// differs from the fixed-advance bitmap face.
//
// Shaper is safe for concurrent use.
type Shaper struct {
	size float64

	mu   sync.Mutex
	face *gotext.Face
	hb   shaping.HarfbuzzShaper
	sfnt *sfnt.Font
	buf  sfnt.Buffer
}

// NewShaper parses TrueType or OpenType data for text of the given em
// size in surface units.
func NewShaper(ttf []byte, size float64) (*Shaper, error) {
	if !(size > 0) {
		return nil, fmt.Errorf("raster: invalid text size %v", size)
	}
	face, err := gotext.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("raster: shaping font: %w", err)
	}
	outlines, err := sfnt.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("raster: outline font: %w", err)
	}
	return &Shaper{size: size, face: face, sfnt: outlines}, nil
}

// GoRegular returns a Shaper for the Go Regular font.
func GoRegular(size float64) (*Shaper, error) {
	return NewShaper(goregular.TTF, size)
}

// Size returns the em size in surface units.
func (s *Shaper) Size() float64 { return s.size }

// shapedGlyph is a glyph and its pen position relative to the run origin,
// in surface units.
type shapedGlyph struct {
	id   sfnt.GlyphIndex
	x, y float64
}

// shape runs HarfBuzz over text. Caller must hold s.mu.
func (s *Shaper) shape(text string) ([]shapedGlyph, float64) {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil, 0
	}
	out := s.hb.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      s.face,
		Size:      fixed.Int26_6(s.size * 64),
		Script:    scriptOf(runes),
		Language:  language.NewLanguage("en"),
	})

	glyphs := make([]shapedGlyph, len(out.Glyphs))
	var pen float64
	for i, g := range out.Glyphs {
		glyphs[i] = shapedGlyph{
			id: sfnt.GlyphIndex(uint16(g.GlyphID)),
			x:  pen + fixedToFloat(g.XOffset),
			y:  fixedToFloat(g.YOffset),
		}
		pen += fixedToFloat(g.Advance)
	}
	return glyphs, pen
}

// Advance returns the shaped width of text in surface units.
func (s *Shaper) Advance(text string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, adv := s.shape(text)
	return adv
}

// Outline appends the glyph outlines of text to p with the baseline
// starting at origin. Coordinates are multiplied by scale, and glyphs are
// loaded at size*scale pixels per em so supersampled output keeps its
// detail. Glyphs without an outline, such as spaces, add nothing.
func (s *Shaper) Outline(p *path.Path, text string, origin helix.Point, scale float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	glyphs, _ := s.shape(text)
	ppem := fixed.Int26_6(s.size * scale * 64)
	for _, g := range glyphs {
		segs, err := s.sfnt.LoadGlyph(&s.buf, g.id, ppem, nil)
		if errors.Is(err, sfnt.ErrNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("raster: glyph %d: %w", g.id, err)
		}
		pen := origin.Add(helix.Pt(g.x, g.y).Mul(scale))
		at := func(pt fixed.Point26_6) helix.Point {
			return pen.Add(helix.Pt(fixedToFloat(pt.X), fixedToFloat(pt.Y)))
		}
		for _, seg := range segs {
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				p.Close()
				p.MoveTo(at(seg.Args[0]))
			case sfnt.SegmentOpLineTo:
				p.LineTo(at(seg.Args[0]))
			case sfnt.SegmentOpQuadTo:
				p.QuadTo(at(seg.Args[0]), at(seg.Args[1]))
			case sfnt.SegmentOpCubeTo:
				p.CubicTo(at(seg.Args[0]), at(seg.Args[1]), at(seg.Args[2]))
			}
		}
		p.Close()
	}
	return nil
}

// scriptOf returns the script of the first non-space rune.
func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
