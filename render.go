package helix

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Default surface size used when the host does not supply one.
const (
	DefaultWidth  = 1440
	DefaultHeight = 900
)

// noticePadding is the distance of the notice from the left and bottom edges.
const noticePadding = 18

// Config holds everything the compositor derives the composition from.
type Config struct {
	Width   float64
	Height  float64
	Palette Palette
	Num     Numerology

	// Notice is an optional single line drawn in ink at the bottom left.
	// It is drawn only on a TextSurface.
	Notice string
}

// DefaultConfig returns a config with the default size, palette and numerology.
func DefaultConfig() Config {
	return Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Palette: DefaultPalette(),
		Num:     DefaultNumerology(),
	}
}

// Validate checks the preconditions Render relies on.
// Render itself never validates.
func (c Config) Validate() error {
	for _, d := range [...]struct {
		name  string
		value float64
	}{{"width", c.Width}, {"height", c.Height}} {
		if d.value < 0 || math.IsNaN(d.value) || math.IsInf(d.value, 0) {
			return fmt.Errorf("%w: %s = %v", ErrInvalidSize, d.name, d.value)
		}
	}
	if err := c.Num.Validate(); err != nil {
		return err
	}
	return c.Palette.Validate()
}

// Render draws the composition onto s.
//
// The background is filled first, then the layers are drawn back to front:
// vesica field, tree scaffold, Fibonacci spiral, helix lattice. The whole
// composition is wrapped in one Save/Restore pair and each layer in its
// own, so the caller's surface state is unchanged when Render returns,
// whether it succeeds or not.
//
// Render performs no validation; see Config.Validate. The first error
// returned by the surface stops rendering and is returned unchanged.
func Render(s Surface, cfg Config) error {
	log := Logger()
	log.Debug("helix: render", "width", cfg.Width, "height", cfg.Height)

	err := isolate(s, func() error {
		w, h := cfg.Width, cfg.Height
		p := cfg.Palette

		s.SetFillColor(p.Background)
		if err := s.FillRect(0, 0, w, h); err != nil {
			return err
		}

		if err := DrawVesicaField(s, w, h, p.Layers[LayerVesica], cfg.Num); err != nil {
			return err
		}
		tree := TreeColors{Path: p.Layers[LayerTreePath], Node: p.Layers[LayerTreeNode]}
		if err := DrawTreeScaffold(s, w, h, tree, cfg.Num); err != nil {
			return err
		}
		if err := DrawFibonacciSpiral(s, w, h, p.Layers[LayerSpiral], cfg.Num); err != nil {
			return err
		}
		lattice := HelixColors{StrandA: p.Layers[LayerStrandA], StrandB: p.Layers[LayerStrandB], Rung: p.Ink}
		if err := DrawHelixLattice(s, w, h, lattice, cfg.Num); err != nil {
			return err
		}

		return drawNotice(s, h, p.Ink, cfg.Notice)
	})
	if err != nil {
		log.Warn("helix: render stopped", "err", err)
	}
	return err
}

// NormalizeNotice trims and NFC-normalizes a notice line.
func NormalizeNotice(notice string) string {
	return strings.TrimSpace(norm.NFC.String(notice))
}

// drawNotice writes the notice in ink near the bottom left corner.
// Blank notices and surfaces without text support draw nothing.
func drawNotice(s Surface, height float64, ink RGBA, notice string) error {
	notice = NormalizeNotice(notice)
	if notice == "" {
		return nil
	}
	ts, ok := s.(TextSurface)
	if !ok {
		Logger().Debug("helix: surface cannot draw text, notice skipped")
		return nil
	}
	return isolate(ts, func() error {
		ts.SetFillColor(ink)
		ts.SetAlpha(0.75)
		return ts.FillText(notice, noticePadding, height-noticePadding)
	})
}
