package helix

import "errors"

// Sentinel errors returned by the boundary validators.
// The render path never returns them; use errors.Is to check.
var (
	// ErrInvalidNumerology indicates a non-positive constant in a Numerology.
	ErrInvalidNumerology = errors.New("helix: invalid numerology")

	// ErrInvalidPalette indicates a palette with fewer than MinLayers layers.
	ErrInvalidPalette = errors.New("helix: invalid palette")

	// ErrInvalidSize indicates a negative or non-finite width or height.
	ErrInvalidSize = errors.New("helix: invalid size")
)
