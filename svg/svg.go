// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package svg provides a vector backend that writes helix compositions as
// SVG documents.
//
// Every Stroke and Fill becomes one <path> element carrying its own paint
// attributes, so the document has no groups and no shared state. Numbers
// are rounded to three decimals, which makes the output byte-for-byte
// reproducible.
//
// Importing the package registers the "svg" backend for the .svg
// extension:
//
//	import _ "github.com/gogpu/helix/svg"
package svg

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/helix"
	"github.com/gogpu/helix/recording"
)

// ErrNotBegun is returned by drawing and output methods of a Canvas that
// has not been sized with Begin.
var ErrNotBegun = errors.New("svg: canvas not begun")

// Text defaults match the bitmap face of the raster backend.
const (
	FontFamily = "monospace"
	FontSize   = 13
)

func init() {
	recording.Register("svg", func() recording.Backend {
		return New()
	}, ".svg")
}

// Canvas accumulates SVG elements.
//
// Canvas implements helix.TextSurface and recording.FileBackend.
// It is not safe for concurrent use.
type Canvas struct {
	width, height float64
	begun         bool

	body     bytes.Buffer
	elements int

	state drawState
	stack []drawState

	d      strings.Builder
	cur    helix.Point
	hasCur bool
}

type drawState struct {
	fill      helix.RGBA
	stroke    helix.RGBA
	lineWidth float64
	alpha     float64
}

var (
	_ helix.TextSurface       = (*Canvas)(nil)
	_ recording.FileBackend   = (*Canvas)(nil)
	_ recording.WriterBackend = (*Canvas)(nil)
)

// New returns a canvas that must be sized with Begin before drawing.
func New() *Canvas {
	return &Canvas{}
}

// Begin starts an empty document of the given size.
func (c *Canvas) Begin(width, height float64) error {
	for _, v := range [...]float64{width, height} {
		if v < 0 || !finite(v) {
			return fmt.Errorf("%w: %vx%v", helix.ErrInvalidSize, width, height)
		}
	}
	c.width, c.height = width, height
	c.begun = true
	c.body.Reset()
	c.elements = 0
	c.state = drawState{fill: helix.Black, stroke: helix.Black, lineWidth: 1, alpha: 1}
	c.stack = c.stack[:0]
	c.BeginPath()
	return nil
}

// End finishes drawing. The document stays writable.
func (c *Canvas) End() error {
	if !c.begun {
		return ErrNotBegun
	}
	return nil
}

// Len returns the number of elements drawn so far.
func (c *Canvas) Len() int { return c.elements }

// Save pushes the current style state.
func (c *Canvas) Save() { c.stack = append(c.stack, c.state) }

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
	if width > 0 && finite(width) {
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
	c.d.Reset()
	c.hasCur = false
}

// MoveTo starts a new subpath. Non-finite coordinates are ignored.
func (c *Canvas) MoveTo(x, y float64) {
	if !finite(x) || !finite(y) {
		return
	}
	c.cmd('M', x, y)
	c.cur, c.hasCur = helix.Pt(x, y), true
}

// LineTo extends the current subpath. Without a current point it behaves
// like MoveTo. Non-finite coordinates are ignored.
func (c *Canvas) LineTo(x, y float64) {
	if !finite(x) || !finite(y) {
		return
	}
	if !c.hasCur {
		c.MoveTo(x, y)
		return
	}
	c.cmd('L', x, y)
	c.cur = helix.Pt(x, y)
}

// Arc adds a circular arc from angle start to angle end, in radians,
// increasing clockwise on screen. A sweep of 2π or more is a full circle,
// written as two half arcs.
func (c *Canvas) Arc(x, y, radius, start, end float64) {
	if !finite(x) || !finite(y) || !finite(radius) || !finite(start) || !finite(end) {
		return
	}
	if radius <= 0 {
		c.LineTo(x, y)
		return
	}

	sweep := end - start
	if sweep >= 2*math.Pi {
		sweep = 2 * math.Pi
	} else if sweep = math.Mod(sweep, 2*math.Pi); sweep < 0 {
		sweep += 2 * math.Pi
	}

	at := func(a float64) helix.Point {
		return helix.Pt(x+radius*math.Cos(a), y+radius*math.Sin(a))
	}
	p0 := at(start)
	if c.hasCur {
		c.LineTo(p0.X, p0.Y)
	} else {
		c.MoveTo(p0.X, p0.Y)
	}

	switch {
	case sweep == 0:
		return
	case sweep == 2*math.Pi:
		mid := at(start + math.Pi)
		c.arcTo(radius, false, mid)
		c.arcTo(radius, false, p0)
	default:
		c.arcTo(radius, sweep > math.Pi, at(start+sweep))
	}
}

func (c *Canvas) arcTo(r float64, large bool, p helix.Point) {
	flag := '0'
	if large {
		flag = '1'
	}
	fmt.Fprintf(&c.d, "A%s %s 0 %c 1 %s %s", num(r), num(r), flag, num(p.X), num(p.Y))
	c.cur = p
}

func (c *Canvas) cmd(op byte, x, y float64) {
	c.d.WriteByte(op)
	c.d.WriteString(num(x))
	c.d.WriteByte(' ')
	c.d.WriteString(num(y))
}

// FillRect writes a <rect> in the fill color. Empty rectangles draw
// nothing.
func (c *Canvas) FillRect(x, y, w, h float64) error {
	if !c.begun {
		return ErrNotBegun
	}
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	if !(w > 0 && h > 0) || !finite(x) || !finite(y) {
		return nil
	}
	c.element(`<rect x="%s" y="%s" width="%s" height="%s"%s/>`,
		num(x), num(y), num(w), num(h), c.paint("fill", c.state.fill))
	return nil
}

// Stroke writes the current path as a stroked <path>.
func (c *Canvas) Stroke() error {
	if !c.begun {
		return ErrNotBegun
	}
	if c.d.Len() == 0 {
		return nil
	}
	c.element(`<path d="%s" fill="none"%s stroke-width="%s"/>`,
		c.d.String(), c.paint("stroke", c.state.stroke), num(c.state.lineWidth))
	return nil
}

// Fill writes the current path as a filled <path>.
func (c *Canvas) Fill() error {
	if !c.begun {
		return ErrNotBegun
	}
	if c.d.Len() == 0 {
		return nil
	}
	c.element(`<path d="%s"%s/>`, c.d.String(), c.paint("fill", c.state.fill))
	return nil
}

// FillText writes a <text> element with its baseline at (x, y).
func (c *Canvas) FillText(s string, x, y float64) error {
	if !c.begun {
		return ErrNotBegun
	}
	if s == "" || !finite(x) || !finite(y) {
		return nil
	}
	var text bytes.Buffer
	if err := xml.EscapeText(&text, []byte(s)); err != nil {
		return err
	}
	c.element(`<text x="%s" y="%s" font-family="%s" font-size="%d"%s>%s</text>`,
		num(x), num(y), FontFamily, FontSize, c.paint("fill", c.state.fill), text.String())
	return nil
}

func (c *Canvas) element(format string, args ...any) {
	fmt.Fprintf(&c.body, format, args...)
	c.body.WriteByte('\n')
	c.elements++
}

// paint returns the color and opacity attributes for the given property.
func (c *Canvas) paint(prop string, col helix.RGBA) string {
	n := col.NRGBA()
	attr := fmt.Sprintf(` %s="#%02x%02x%02x"`, prop, n.R, n.G, n.B)
	if a := col.A * c.state.alpha; a < 1 {
		attr += fmt.Sprintf(` %s-opacity="%s"`, prop, num(math.Max(a, 0)))
	}
	return attr
}

// WriteTo writes the complete document. It implements io.WriterTo.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	if !c.begun {
		return 0, ErrNotBegun
	}
	bw := bufio.NewWriter(w)
	var total int64
	n, err := fmt.Fprintf(bw,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" width=\"%s\" height=\"%s\" viewBox=\"0 0 %s %s\">\n",
		num(c.width), num(c.height), num(c.width), num(c.height))
	total += int64(n)
	if err != nil {
		return total, err
	}
	m, err := bw.Write(c.body.Bytes())
	total += int64(m)
	if err != nil {
		return total, err
	}
	n, err = bw.WriteString("</svg>\n")
	total += int64(n)
	if err != nil {
		return total, err
	}
	return total, bw.Flush()
}

// SaveToFile writes the document to path.
func (c *Canvas) SaveToFile(path string) (err error) {
	if !c.begun {
		return ErrNotBegun
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	helix.Logger().Debug("svg: save", "path", path, "elements", c.elements)
	_, err = c.WriteTo(f)
	return err
}

// num formats v rounded to three decimals without trailing zeros.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
