package helix

import "fmt"

// Layer indices into Palette.Layers.
const (
	LayerVesica   = iota // vesica field outlines
	LayerTreePath        // tree scaffold edges
	LayerTreeNode        // tree scaffold node discs
	LayerSpiral          // Fibonacci spiral
	LayerStrandA         // helix strand A
	LayerStrandB         // helix strand B

	// MinLayers is the number of layer colors the composition consumes.
	MinLayers
)

// Palette holds the colors of the composition.
type Palette struct {
	// Background fills the whole surface before any layer is drawn.
	Background RGBA `json:"bg"`

	// Ink colors the helix rungs and the optional notice.
	Ink RGBA `json:"ink"`

	// Layers are consumed by index; see LayerVesica through LayerStrandB.
	// Entries beyond MinLayers are ignored.
	Layers []RGBA `json:"layers"`
}

// DefaultPalette returns the safe fallback palette used when no palette
// file is available.
func DefaultPalette() Palette {
	return Palette{
		Background: Hex("#0b0b12"),
		Ink:        Hex("#e8e8f0"),
		Layers: []RGBA{
			Hex("#b1c7ff"),
			Hex("#89f7fe"),
			Hex("#a0ffa1"),
			Hex("#ffd27f"),
			Hex("#f5a3ff"),
			Hex("#d0d0e6"),
		},
	}
}

// Validate checks that the palette has enough layer colors.
func (p Palette) Validate() error {
	if len(p.Layers) < MinLayers {
		return fmt.Errorf("%w: %d layers, need at least %d", ErrInvalidPalette, len(p.Layers), MinLayers)
	}
	return nil
}

// Clone returns a deep copy of the palette.
func (p Palette) Clone() Palette {
	out := p
	out.Layers = append([]RGBA(nil), p.Layers...)
	return out
}
