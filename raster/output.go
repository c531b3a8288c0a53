// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"io"
	"math"

	"github.com/disintegration/imaging"

	"github.com/gogpu/helix"
)

// Supersample returns the supersampling factor of the current buffer.
func (c *Canvas) Supersample() int {
	return c.opts.supersample
}

// PixelSize returns the size of the image returned by Image.
func (c *Canvas) PixelSize() (width, height int) {
	if c.img == nil {
		return 0, 0
	}
	return int(math.Ceil(c.width)), int(math.Ceil(c.height))
}

// Image returns the rendered image at the surface size. Without
// supersampling it is the canvas buffer itself; otherwise a Lanczos
// reduction of it. Image returns nil before Begin.
func (c *Canvas) Image() image.Image {
	if c.img == nil {
		return nil
	}
	if c.scale == 1 {
		return c.img
	}
	w, h := c.PixelSize()
	if w == 0 || h == 0 {
		return image.NewNRGBA(image.Rect(0, 0, w, h))
	}
	return imaging.Resize(c.img, w, h, imaging.Lanczos)
}

// WriteTo encodes the image as PNG. It implements io.WriterTo.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	img := c.Image()
	if img == nil {
		return 0, ErrNotBegun
	}
	cw := &countingWriter{w: w}
	err := imaging.Encode(cw, img, imaging.PNG)
	return cw.n, err
}

// SaveToFile encodes the image in the format named by the file extension
// (.png, .jpg, .jpeg, .gif, .tif, .tiff or .bmp).
func (c *Canvas) SaveToFile(path string) error {
	img := c.Image()
	if img == nil {
		return ErrNotBegun
	}
	helix.Logger().Debug("raster: save", "path", path)
	return imaging.Save(img, path, imaging.JPEGQuality(95))
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
