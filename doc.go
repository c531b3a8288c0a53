// Package helix renders a static, layered geometry composition.
//
// # Overview
//
// helix draws four layers onto any [Surface], back to front:
//
//  1. Vesica field: a grid of overlapping circle pairs
//  2. Tree-of-Life scaffold: 10 nodes joined by 22 paths
//  3. Fibonacci spiral: one logarithmic spiral polyline
//  4. Helix lattice: two phase-shifted sine strands joined by rungs
//
// Every size, density and sample count comes from a [Numerology] table and
// the surface dimensions; every color comes from a [Palette]. There is no
// randomness and no animation, so identical inputs always produce the same
// sequence of surface operations.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/helix"
//	    "github.com/gogpu/helix/raster"
//	)
//
//	canvas := raster.NewCanvasSize(1440, 900)
//	if err := helix.Render(canvas, helix.DefaultConfig()); err != nil {
//	    log.Fatal(err)
//	}
//	canvas.SaveToFile("helix.png")
//
// # Surfaces
//
// The compositor only talks to the [Surface] interface. Three
// implementations ship with the module:
//
//   - recording.Recorder: captures every call as a typed command
//   - raster.Canvas: anti-aliased pixels via golang.org/x/image/vector
//   - svg.Backend: an SVG document
//
// A recording can be played back into any registered backend.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, increasing clockwise on screen
//
// # Preconditions
//
// Render does not validate its input. All Numerology fields must be
// positive and the palette must have at least [MinLayers] layer colors;
// use [Config.Validate] at the boundary. Zero-sized surfaces are valid and
// render an empty composition.
package helix

// Version is the current version of the library.
const Version = "0.1.0"
