// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster provides a CPU backend that renders helix compositions
// to an *image.RGBA.
//
// Paths are flattened and stroked on the CPU, then scan converted with
// golang.org/x/image/vector and composited source-over. Text uses a
// bitmap face from golang.org/x/image/font. Output is encoded with
// github.com/disintegration/imaging, which picks the format from the file
// extension.
//
// Importing the package registers the "raster" backend:
//
//	import _ "github.com/gogpu/helix/raster"
//
//	backend, _ := recording.NewBackend("raster")
//	_ = r.Playback(backend)
//	_ = backend.(recording.FileBackend).SaveToFile("helix.png")
//
// A Canvas can also be used directly as a helix.Surface:
//
//	c, err := raster.NewCanvasSize(1440, 900, raster.WithSupersample(2))
//	if err != nil {
//	    return err
//	}
//	if err := helix.Render(c, cfg); err != nil {
//	    return err
//	}
//	return c.SaveToFile("helix.png")
//
// With supersampling the canvas rasterizes at k times the requested size
// and Image reduces the result with a Lanczos filter.
package raster
