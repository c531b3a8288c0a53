package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/helix"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPaletteShipped(t *testing.T) {
	p, err := LoadPalette(filepath.Join("..", "..", DefaultPalettePath))
	if err != nil {
		t.Fatalf("LoadPalette() error = %v", err)
	}
	if diff := cmp.Diff(helix.DefaultPalette(), p); diff != "" {
		t.Errorf("shipped palette differs from fallback (-want +got):\n%s", diff)
	}
	if got := PaletteStatus(err); got != StatusLoaded {
		t.Errorf("PaletteStatus() = %q, want %q", got, StatusLoaded)
	}
}

func TestLoadPaletteMissing(t *testing.T) {
	p, err := LoadPalette(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("LoadPalette() error = %v, want fs.ErrNotExist", err)
	}
	if diff := cmp.Diff(helix.DefaultPalette(), p); diff != "" {
		t.Errorf("fallback palette mismatch (-want +got):\n%s", diff)
	}
	if got := PaletteStatus(err); got != StatusFallback {
		t.Errorf("PaletteStatus() = %q, want %q", got, StatusFallback)
	}
}

func TestLoadPaletteInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"malformed", `{"bg": `, nil},
		{"bad color", `{"bg":"#zzz","ink":"#fff","layers":["#000","#000","#000","#000","#000","#000"]}`, nil},
		{"unknown key", `{"bg":"#000","ink":"#fff","layer":["#000"]}`, nil},
		{"too few layers", `{"bg":"#000","ink":"#fff","layers":["#000","#111"]}`, helix.ErrInvalidPalette},
		{"trailing", `{"bg":"#000","ink":"#fff","layers":["#000","#111","#222","#333","#444","#555"]} {}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := LoadPalette(writeFile(t, "palette.json", tt.content))
			if err == nil {
				t.Fatal("LoadPalette() error = nil, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadPalette() error = %v, want %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(helix.DefaultPalette(), p); diff != "" {
				t.Errorf("fallback palette mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodePaletteExtraLayers(t *testing.T) {
	p, err := DecodePalette([]byte(`{"bg":"#000","ink":"#fff","layers":["#111","#222","#333","#444","#555","#666","#777"]}`))
	if err != nil {
		t.Fatalf("DecodePalette() error = %v", err)
	}
	if len(p.Layers) != 7 {
		t.Errorf("len(Layers) = %d, want 7", len(p.Layers))
	}
	if got := p.Ink.Hex(); got != "#ffffff" {
		t.Errorf("Ink = %s, want #ffffff", got)
	}
}

func TestDecodeDefaults(t *testing.T) {
	f, err := Decode([]byte(`{}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if diff := cmp.Diff(Defaults(), f); diff != "" {
		t.Errorf("Decode({}) mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodePartialNumerology(t *testing.T) {
	f, err := Decode([]byte(`{"width": 320, "NUM": {"ELEVEN": 13, "NINETYNINE": 50}}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := helix.DefaultNumerology()
	want.Eleven = 13
	want.NinetyNine = 50
	if diff := cmp.Diff(want, f.Num); diff != "" {
		t.Errorf("Num mismatch (-want +got):\n%s", diff)
	}
	if f.Width != 320 {
		t.Errorf("Width = %v, want 320", f.Width)
	}
	if f.Height != helix.DefaultHeight {
		t.Errorf("Height = %v, want %v", f.Height, helix.DefaultHeight)
	}
}

func TestDecodeDoesNotValidateNumerology(t *testing.T) {
	f, err := Decode([]byte(`{"NUM": {"THREE": 0}}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	cfg := f.Config(helix.DefaultPalette())
	if err := cfg.Validate(); !errors.Is(err, helix.ErrInvalidNumerology) {
		t.Errorf("Validate() error = %v, want ErrInvalidNumerology", err)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown NUM key", `{"NUM": {"TWELVE": 12}}`},
		{"unknown key", `{"colour": "red"}`},
		{"wrong type", `{"width": "wide"}`},
		{"short palette", `{"palette": {"bg":"#000","ink":"#fff","layers":[]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Decode([]byte(tt.content))
			if err == nil {
				t.Fatal("Decode() error = nil, want error")
			}
			if diff := cmp.Diff(Defaults(), f); diff != "" {
				t.Errorf("Decode() on error should return defaults (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := writeFile(t, "render.json", `{
		"width": 640,
		"height": 400,
		"notice": "offline render",
		"palette": {"bg":"#101010","ink":"#fafafa","layers":["#111","#222","#333","#444","#555","#666"]}
	}`)
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	cfg := f.Config(helix.DefaultPalette())
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Width != 640 || cfg.Height != 400 {
		t.Errorf("size = %vx%v, want 640x400", cfg.Width, cfg.Height)
	}
	if cfg.Notice != "offline render" {
		t.Errorf("Notice = %q, want %q", cfg.Notice, "offline render")
	}
	if got := cfg.Palette.Background.Hex(); got != "#101010" {
		t.Errorf("Background = %s, want #101010", got)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "render.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() error = %v, want fs.ErrNotExist", err)
	}
}

func TestFileConfigFallbackPalette(t *testing.T) {
	fallback := helix.DefaultPalette()
	fallback.Ink = helix.Hex("#123456")
	cfg := Defaults().Config(fallback)
	if got := cfg.Palette.Ink.Hex(); got != "#123456" {
		t.Errorf("Ink = %s, want #123456", got)
	}
	cfg.Palette.Layers[0] = helix.Hex("#ffffff")
	if fallback.Layers[0].Hex() == "#ffffff" {
		t.Error("Config() shares the fallback's layer slice")
	}
}
