package helix

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultNumerologyValid(t *testing.T) {
	if err := DefaultNumerology().Validate(); err != nil {
		t.Errorf("DefaultNumerology().Validate() = %v", err)
	}
}

func TestNumerologyValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Numerology)
	}{
		{"zero three", func(n *Numerology) { n.Three = 0 }},
		{"negative seven", func(n *Numerology) { n.Seven = -7 }},
		{"zero samples", func(n *Numerology) { n.OneFortyFour = 0 }},
		{"zero rungs", func(n *Numerology) { n.ThirtyThree = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := DefaultNumerology()
			tt.mutate(&n)
			if err := n.Validate(); !errors.Is(err, ErrInvalidNumerology) {
				t.Errorf("Validate() = %v, want ErrInvalidNumerology", err)
			}
		})
	}
}

func TestPaletteValidate(t *testing.T) {
	p := DefaultPalette()
	if err := p.Validate(); err != nil {
		t.Fatalf("DefaultPalette().Validate() = %v", err)
	}
	p.Layers = p.Layers[:5]
	if err := p.Validate(); !errors.Is(err, ErrInvalidPalette) {
		t.Errorf("Validate() with 5 layers = %v, want ErrInvalidPalette", err)
	}
}

func TestPaletteClone(t *testing.T) {
	p := DefaultPalette()
	c := p.Clone()
	c.Layers[0] = Black
	if p.Layers[0] == Black {
		t.Error("Clone shares layer storage")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"default", func(*Config) {}, nil},
		{"zero size", func(c *Config) { c.Width, c.Height = 0, 0 }, nil},
		{"negative width", func(c *Config) { c.Width = -1 }, ErrInvalidSize},
		{"nan height", func(c *Config) { c.Height = math.NaN() }, ErrInvalidSize},
		{"inf width", func(c *Config) { c.Width = math.Inf(1) }, ErrInvalidSize},
		{"short palette", func(c *Config) { c.Palette.Layers = nil }, ErrInvalidPalette},
		{"bad numerology", func(c *Config) { c.Num.Nine = 0 }, ErrInvalidNumerology},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
