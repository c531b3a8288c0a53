// Package config loads palettes and render documents from JSON files.
//
// Loading never validates numerology or size. Callers validate the
// resulting helix.Config once, at the boundary.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/gogpu/helix"
)

// DefaultPalettePath is the palette file shipped with the repository.
const DefaultPalettePath = "data/palette.json"

// Status lines reported by LoadPalette callers.
const (
	StatusLoaded   = "Palette loaded."
	StatusFallback = "Palette missing; using safe fallback."
)

// LoadPalette reads a palette file.
//
// On any failure it returns helix.DefaultPalette together with the error,
// so callers that only want a usable palette can ignore the error. A
// missing file satisfies errors.Is(err, fs.ErrNotExist).
func LoadPalette(path string) (helix.Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return helix.DefaultPalette(), err
	}
	p, err := DecodePalette(data)
	if err != nil {
		return helix.DefaultPalette(), fmt.Errorf("config: %s: %w", path, err)
	}
	return p, nil
}

// DecodePalette parses and validates a JSON palette document.
func DecodePalette(data []byte) (helix.Palette, error) {
	var p helix.Palette
	if err := strictUnmarshal(data, &p); err != nil {
		return helix.Palette{}, err
	}
	if err := p.Validate(); err != nil {
		return helix.Palette{}, err
	}
	return p, nil
}

// PaletteStatus returns the status line for the result of LoadPalette.
func PaletteStatus(err error) string {
	if err != nil {
		return StatusFallback
	}
	return StatusLoaded
}

// File is a render document.
//
//	{
//	  "width": 1440,
//	  "height": 900,
//	  "notice": "offline render",
//	  "NUM": {"ELEVEN": 13},
//	  "palette": {"bg": "#000000", "ink": "#ffffff", "layers": [...]}
//	}
//
// Every field is optional. NUM keys decode over helix.DefaultNumerology,
// so a partial table keeps the remaining defaults.
type File struct {
	Width   float64          `json:"width"`
	Height  float64          `json:"height"`
	Notice  string           `json:"notice"`
	Num     helix.Numerology `json:"NUM"`
	Palette *helix.Palette   `json:"palette,omitempty"`
}

// Defaults returns the document used when no file is given.
func Defaults() File {
	return File{
		Width:  helix.DefaultWidth,
		Height: helix.DefaultHeight,
		Num:    helix.DefaultNumerology(),
	}
}

// Load reads a render document from path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults(), err
	}
	f, err := Decode(data)
	if err != nil {
		return Defaults(), fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

// Decode parses a render document over Defaults.
func Decode(data []byte) (File, error) {
	f := Defaults()
	if err := strictUnmarshal(data, &f); err != nil {
		return Defaults(), err
	}
	if f.Palette != nil {
		if err := f.Palette.Validate(); err != nil {
			return Defaults(), err
		}
	}
	return f, nil
}

// Config converts the document to a helix.Config. The document's own
// palette wins over fallback.
func (f File) Config(fallback helix.Palette) helix.Config {
	p := fallback
	if f.Palette != nil {
		p = *f.Palette
	}
	return helix.Config{
		Width:   f.Width,
		Height:  f.Height,
		Palette: p.Clone(),
		Num:     f.Num,
		Notice:  f.Notice,
	}
}

// strictUnmarshal decodes exactly one JSON value and rejects unknown keys.
func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("trailing data after JSON document")
	}
	return nil
}
