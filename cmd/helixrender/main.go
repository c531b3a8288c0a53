// Command helixrender renders the helix composition to an image file.
//
// Usage:
//
//	helixrender [flags]
//
// The backend is chosen from the output extension unless -backend is given:
//
//	helixrender -o helix.png
//	helixrender -o helix.svg -notice "offline render"
//	helixrender -backend raster -o - > helix.png
//
// Raster notices are shaped with Go Regular; -text bitmap selects the
// fixed 7x13 face instead.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"github.com/gogpu/helix"
	"github.com/gogpu/helix/internal/config"
	"github.com/gogpu/helix/raster"
	"github.com/gogpu/helix/recording"
	_ "github.com/gogpu/helix/svg"
)

// pipeName selects standard output as the destination.
const pipeName = "-"

const defaultBackend = "raster"

// Text modes for raster notices.
const (
	textShaped = "shaped"
	textBitmap = "bitmap"
)

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("helixrender: %v", err)
	}
}

type options struct {
	width, height float64
	palette       string
	config        string
	notice        string
	backend       string
	output        string
	supersample   int
	text          string
	trace         bool
	verbose       bool
	listBackends  bool

	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := &options{set: make(map[string]bool)}
	flags := flag.NewFlagSet("helixrender", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Float64Var(&o.width, "width", helix.DefaultWidth, "canvas width")
	flags.Float64Var(&o.height, "height", helix.DefaultHeight, "canvas height")
	flags.StringVar(&o.palette, "palette", config.DefaultPalettePath, "palette JSON file")
	flags.StringVar(&o.config, "config", "", "render document (size, notice, NUM, palette)")
	flags.StringVar(&o.notice, "notice", "", "single line drawn at the bottom left")
	flags.StringVar(&o.backend, "backend", "", "backend name (default: from output extension, else raster)")
	flags.StringVar(&o.output, "o", "helix.png", "output file, - for stdout")
	flags.IntVar(&o.supersample, "supersample", 1, "raster supersampling factor")
	flags.StringVar(&o.text, "text", textShaped, "raster notice text: shaped or bitmap")
	flags.BoolVar(&o.trace, "trace", false, "print the recorded operations to stderr")
	flags.BoolVar(&o.verbose, "v", false, "verbose logging")
	flags.BoolVar(&o.listBackends, "backends", false, "list registered backends and exit")
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if flags.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", flags.Args())
	}
	if o.text != textShaped && o.text != textBitmap {
		return nil, fmt.Errorf("invalid -text %q: want %s or %s", o.text, textShaped, textBitmap)
	}
	flags.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	helix.SetLogger(logger)
	defer helix.SetLogger(nil)

	if o.listBackends {
		for _, name := range recording.Backends() {
			fmt.Fprintf(stdout, "%s\t%v\n", name, recording.Extensions(name))
		}
		return nil
	}

	cfg, err := o.renderConfig(logger)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	rec := recording.NewRecorder(cfg.Width, cfg.Height)
	if err := helix.Render(rec, cfg); err != nil {
		return err
	}
	r := rec.FinishRecording()
	if o.trace {
		if _, err := r.WriteTo(stderr); err != nil {
			return err
		}
	}

	name := o.backendName()
	backend, err := recording.NewBackend(name)
	if err != nil {
		return err
	}
	attrs := []any{"backend", name}
	if c, ok := backend.(*raster.Canvas); ok {
		opts, err := o.rasterOptions()
		if err != nil {
			return err
		}
		c.Apply(opts...)
		attrs = append(attrs, "supersample", c.Supersample(), "text", o.text)
	} else {
		for _, f := range [...]string{"supersample", "text"} {
			if o.set[f] {
				logger.Warn(f+" ignored", "backend", name)
			}
		}
	}
	if err := r.Playback(backend); err != nil {
		return err
	}

	size, err := writeOutput(backend, o.output, stdout)
	if err != nil {
		return err
	}
	logger.Info("rendered", append(attrs,
		"size", fmt.Sprintf("%gx%g", cfg.Width, cfg.Height),
		"ops", humanize.Comma(int64(r.Len())),
		"output", o.output,
		"bytes", humanize.Bytes(uint64(size)))...)
	return nil
}

func (o *options) rasterOptions() ([]raster.Option, error) {
	opts := []raster.Option{raster.WithSupersample(o.supersample)}
	if o.text == textShaped {
		sh, err := raster.GoRegular(raster.DefaultTextSize)
		if err != nil {
			return nil, err
		}
		opts = append(opts, raster.WithShaper(sh))
	}
	return opts, nil
}

// renderConfig merges the palette file, the optional render document and
// explicitly set flags, in that order of increasing precedence.
func (o *options) renderConfig(logger *slog.Logger) (helix.Config, error) {
	palette, err := config.LoadPalette(o.palette)
	if err != nil {
		attrs := []any{"path", o.palette}
		if !errors.Is(err, fs.ErrNotExist) {
			attrs = append(attrs, "err", err)
		}
		logger.Warn(config.StatusFallback, attrs...)
	} else {
		logger.Info(config.StatusLoaded, "path", o.palette)
	}

	file := config.Defaults()
	if o.config != "" {
		file, err = config.Load(o.config)
		if err != nil {
			return helix.Config{}, err
		}
	}
	cfg := file.Config(palette)

	if o.set["width"] {
		cfg.Width = o.width
	}
	if o.set["height"] {
		cfg.Height = o.height
	}
	if o.set["notice"] {
		cfg.Notice = o.notice
	}
	return cfg, nil
}

func (o *options) backendName() string {
	if o.backend != "" {
		return o.backend
	}
	if o.output != pipeName {
		if name, ok := recording.BackendFor(o.output); ok {
			return name
		}
	}
	return defaultBackend
}

// writeOutput stores the backend's result and returns its size in bytes.
func writeOutput(b recording.Backend, out string, stdout io.Writer) (int64, error) {
	if out == pipeName {
		if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return 0, errors.New("`-` should be used with a pipe for stdout")
		}
		wb, ok := b.(recording.WriterBackend)
		if !ok {
			return 0, errors.New("backend cannot write to a stream")
		}
		return wb.WriteTo(stdout)
	}

	if fb, ok := b.(recording.FileBackend); ok {
		if err := fb.SaveToFile(out); err != nil {
			return 0, err
		}
		fi, err := os.Stat(out)
		if err != nil {
			return 0, err
		}
		return fi.Size(), nil
	}

	wb, ok := b.(recording.WriterBackend)
	if !ok {
		return 0, errors.New("backend has no output")
	}
	f, err := os.Create(out)
	if err != nil {
		return 0, err
	}
	n, err := wb.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}
