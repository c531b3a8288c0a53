// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/vector"

	"github.com/gogpu/helix"
	"github.com/gogpu/helix/internal/cache"
	"github.com/gogpu/helix/internal/path"
	"github.com/gogpu/helix/internal/stroke"
	"github.com/gogpu/helix/recording"
)

var (
	// ErrNotBegun is returned by drawing and output methods of a Canvas
	// that has not been sized with Begin.
	ErrNotBegun = errors.New("raster: canvas not begun")

	// ErrTooLarge is returned by Begin when the pixel buffer would exceed
	// MaxPixels.
	ErrTooLarge = errors.New("raster: canvas too large")
)

// MaxPixels bounds the supersampled pixel count of a canvas.
const MaxPixels = 1 << 26

// maskCacheSize bounds the number of text masks a canvas keeps.
const maskCacheSize = 32

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewCanvas()
	}, ".png", ".jpg", ".jpeg", ".gif", ".tif", ".tiff", ".bmp")
}

// Canvas is a CPU surface backed by an *image.RGBA.
//
// Canvas implements helix.TextSurface and recording.FileBackend.
// It is not safe for concurrent use.
type Canvas struct {
	opts options

	width, height float64
	scale         float64
	img           *image.RGBA

	state drawState
	stack []drawState
	path  *path.Path

	rast  vector.Rasterizer
	masks *cache.Cache[string, textMask]
}

// drawState is the part of the canvas saved by Save.
type drawState struct {
	fill      helix.RGBA
	stroke    helix.RGBA
	lineWidth float64
	alpha     float64
}

func defaultDrawState() drawState {
	return drawState{
		fill:      helix.Black,
		stroke:    helix.Black,
		lineWidth: 1,
		alpha:     1,
	}
}

var (
	_ helix.TextSurface      = (*Canvas)(nil)
	_ recording.FileBackend   = (*Canvas)(nil)
	_ recording.WriterBackend = (*Canvas)(nil)
)

// NewCanvas returns a canvas that must be sized with Begin before drawing.
func NewCanvas(opts ...Option) *Canvas {
	c := &Canvas{
		opts:  defaultOptions(),
		masks: cache.New[string, textMask](maskCacheSize),
	}
	c.Apply(opts...)
	return c
}

// NewCanvasSize returns a canvas already begun at the given size.
func NewCanvasSize(width, height float64, opts ...Option) (*Canvas, error) {
	c := NewCanvas(opts...)
	if err := c.Begin(width, height); err != nil {
		return nil, err
	}
	return c, nil
}

// Apply applies options. Options take effect at the next Begin.
func (c *Canvas) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(&c.opts)
	}
}

// Begin allocates a transparent pixel buffer for a surface of the given
// size and resets the drawing state. Fractional sizes are rounded up.
func (c *Canvas) Begin(width, height float64) error {
	for _, d := range [...]float64{width, height} {
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return fmt.Errorf("%w: %vx%v", helix.ErrInvalidSize, width, height)
		}
	}
	k := float64(c.opts.supersample)
	pw, ph := math.Ceil(width*k), math.Ceil(height*k)
	if pw*ph > MaxPixels {
		return fmt.Errorf("%w: %vx%v pixels", ErrTooLarge, pw, ph)
	}

	c.width, c.height = width, height
	c.scale = k
	c.img = image.NewRGBA(image.Rect(0, 0, int(pw), int(ph)))
	c.state = defaultDrawState()
	c.stack = c.stack[:0]
	c.path = path.New(c.opts.tolerance)
	c.masks.Clear()

	helix.Logger().Debug("raster: begin", "width", int(pw), "height", int(ph), "supersample", c.opts.supersample)
	return nil
}

// End finishes drawing. The canvas stays readable and drawable.
func (c *Canvas) End() error {
	if c.img == nil {
		return ErrNotBegun
	}
	if n := len(c.stack); n > 0 {
		helix.Logger().Warn("raster: unbalanced save", "depth", n)
	}
	return nil
}

// Width returns the width passed to Begin.
func (c *Canvas) Width() float64 { return c.width }

// Height returns the height passed to Begin.
func (c *Canvas) Height() float64 { return c.height }

// Depth returns the number of saved states.
func (c *Canvas) Depth() int { return len(c.stack) }

// Save pushes the current style state.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the last saved style state. With an empty stack it does
// nothing.
func (c *Canvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.state = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

// SetFillColor sets the color used by Fill, FillRect and FillText.
func (c *Canvas) SetFillColor(col helix.RGBA) { c.state.fill = col }

// SetStrokeColor sets the color used by Stroke.
func (c *Canvas) SetStrokeColor(col helix.RGBA) { c.state.stroke = col }

// SetLineWidth sets the stroke width. Non-positive and non-finite widths
// are ignored.
func (c *Canvas) SetLineWidth(width float64) {
	if width > 0 && !math.IsInf(width, 0) {
		c.state.lineWidth = width
	}
}

// SetAlpha sets the global alpha. Values outside [0, 1] are ignored.
func (c *Canvas) SetAlpha(alpha float64) {
	if alpha >= 0 && alpha <= 1 {
		c.state.alpha = alpha
	}
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	if c.path == nil {
		c.path = path.New(c.opts.tolerance)
	}
	c.path.Reset()
}

func (c *Canvas) device(x, y float64) helix.Point {
	return helix.Pt(x*c.scale, y*c.scale)
}

// MoveTo starts a new subpath.
func (c *Canvas) MoveTo(x, y float64) {
	if c.path != nil {
		c.path.MoveTo(c.device(x, y))
	}
}

// LineTo extends the current subpath with a straight line.
func (c *Canvas) LineTo(x, y float64) {
	if c.path != nil {
		c.path.LineTo(c.device(x, y))
	}
}

// Arc adds a circular arc from angle start to angle end, in radians,
// increasing clockwise on screen.
func (c *Canvas) Arc(x, y, radius, start, end float64) {
	if c.path != nil {
		c.path.Arc(c.device(x, y), radius*c.scale, start, end)
	}
}

// FillRect fills a rectangle with the fill color. The current path is
// unchanged.
func (c *Canvas) FillRect(x, y, w, h float64) error {
	if c.img == nil {
		return ErrNotBegun
	}
	p0, p1 := c.device(x, y), c.device(x+w, y+h)
	rect := []helix.Point{p0, helix.Pt(p1.X, p0.Y), p1, helix.Pt(p0.X, p1.Y)}
	c.fillPolygons([][]helix.Point{rect}, c.state.fill)
	return nil
}

// Stroke strokes the current path with the stroke color and line width.
func (c *Canvas) Stroke() error {
	if c.img == nil {
		return ErrNotBegun
	}
	style := stroke.DefaultStyle()
	style.Width = c.state.lineWidth * c.scale
	if c.opts.tolerance > 0 {
		style.Tolerance = c.opts.tolerance
	}
	c.fillPolygons(stroke.Expand(c.path.Subpaths(), style), c.state.stroke)
	return nil
}

// Fill fills the current path with the fill color. Every subpath is
// implicitly closed.
func (c *Canvas) Fill() error {
	if c.img == nil {
		return ErrNotBegun
	}
	var polys [][]helix.Point
	for _, sp := range c.path.Subpaths() {
		if len(sp.Points) >= 3 {
			polys = append(polys, sp.Points)
		}
	}
	c.fillPolygons(polys, c.state.fill)
	return nil
}

// fillPolygons composites the non-zero union of polys over the canvas.
func (c *Canvas) fillPolygons(polys [][]helix.Point, col helix.RGBA) {
	var finite [][]helix.Point
	for _, poly := range polys {
		if len(poly) >= 3 && path.Finite(poly) {
			finite = append(finite, poly)
		}
	}
	lo, hi, ok := path.Bounds(finite)
	if !ok {
		return
	}
	b := c.img.Bounds()
	window := image.Rect(
		clampInt(math.Floor(lo.X), b.Min.X, b.Max.X), clampInt(math.Floor(lo.Y), b.Min.Y, b.Max.Y),
		clampInt(math.Ceil(hi.X), b.Min.X, b.Max.X), clampInt(math.Ceil(hi.Y), b.Min.Y, b.Max.Y),
	)
	if window.Empty() {
		return
	}

	c.rast.Reset(window.Dx(), window.Dy())
	c.rast.DrawOp = draw.Over
	origin := helix.Pt(float64(window.Min.X), float64(window.Min.Y))
	for _, poly := range finite {
		clipped := clipPolygon(poly, window)
		if len(clipped) < 3 {
			continue
		}
		first := clipped[0].Sub(origin)
		c.rast.MoveTo(float32(first.X), float32(first.Y))
		for _, pt := range clipped[1:] {
			pt = pt.Sub(origin)
			c.rast.LineTo(float32(pt.X), float32(pt.Y))
		}
		c.rast.ClosePath()
	}
	c.rast.Draw(c.img, window, image.NewUniform(c.paint(col)), image.Point{})
}

func clampInt(v float64, lo, hi int) int {
	switch {
	case v < float64(lo):
		return lo
	case v > float64(hi):
		return hi
	}
	return int(v)
}

// paint returns col with the global alpha applied.
func (c *Canvas) paint(col helix.RGBA) color.NRGBA {
	return col.WithAlpha(c.state.alpha).NRGBA()
}

// options configures a Canvas.
type options struct {
	supersample int
	tolerance   float64
	face        font.Face
	shaper      *Shaper
}

func defaultOptions() options {
	return options{
		supersample: 1,
		tolerance:   path.Tolerance,
		face:        basicfont.Face7x13,
	}
}

// Option configures a Canvas.
type Option func(*options)

// WithSupersample rasterizes at k times the surface size. Values below 1
// select 1.
func WithSupersample(k int) Option {
	return func(o *options) {
		if k < 1 {
			k = 1
		}
		o.supersample = k
	}
}

// WithTolerance sets the curve flattening tolerance in pixels of the
// supersampled buffer.
func WithTolerance(tolerance float64) Option {
	return func(o *options) {
		if tolerance > 0 {
			o.tolerance = tolerance
		}
	}
}

// WithFace sets the face used by FillText. A nil face selects
// basicfont.Face7x13.
func WithFace(face font.Face) Option {
	return func(o *options) {
		if face == nil {
			face = basicfont.Face7x13
		}
		o.face = face
	}
}

// WithShaper makes FillText draw shaped glyph outlines instead of the
// bitmap face. A nil shaper restores the bitmap face.
func WithShaper(s *Shaper) Option {
	return func(o *options) {
		o.shaper = s
	}
}
