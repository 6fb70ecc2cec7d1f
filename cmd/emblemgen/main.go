// Command emblemgen generates the robot emblem and writes it as an SVG
// document or a PNG preview.
//
//	emblemgen -o robot.svg
//	emblemgen -config variants.yaml -variant scout -backend raster -scale 16 -o scout.png
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fedorabots/emblem"
	"github.com/fedorabots/emblem/recording"
	"github.com/fedorabots/emblem/recording/backends/raster"
	_ "github.com/fedorabots/emblem/recording/backends/svg"
)

type options struct {
	config  string
	variant string
	backend string
	scale   float64
	output  string
	verbose bool
	list    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.config, "config", "", "YAML file of named variants (default: built-in layout)")
	flag.StringVar(&opts.variant, "variant", emblem.DefaultVariant, "variant to generate")
	flag.StringVar(&opts.backend, "backend", "svg", "output backend: "+strings.Join(recording.Backends(), ", "))
	flag.Float64Var(&opts.scale, "scale", raster.DefaultScale, "pixels per unit (raster backend)")
	flag.StringVar(&opts.output, "o", "", "output file, - for stdout (default: <variant>.svg or <variant>.png)")
	flag.BoolVar(&opts.verbose, "v", false, "debug logging")
	flag.BoolVar(&opts.list, "list", false, "list variants and exit")
	flag.Parse()

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	emblem.SetLogger(logger)

	if err := run(opts, os.Stdout); err != nil {
		logger.Error("emblemgen failed", "err", err)
		os.Exit(1)
	}
}

func run(opts options, stdout io.Writer) error {
	variants, err := loadVariants(opts.config)
	if err != nil {
		return err
	}
	if opts.list {
		for _, name := range variants.Names() {
			fmt.Fprintln(stdout, name)
		}
		return nil
	}

	cfg, err := variants.Get(opts.variant)
	if err != nil {
		return err
	}
	e, err := emblem.Generate(cfg)
	if err != nil {
		return err
	}

	b, err := recording.NewBackend(opts.backend)
	if err != nil {
		return err
	}
	if rb, ok := b.(*raster.Backend); ok {
		rb.SetScale(opts.scale)
	}
	if err := recording.FromEmblem(e).Playback(b); err != nil {
		return err
	}
	output := outputPath(opts)
	if err := write(b, output, stdout); err != nil {
		return err
	}
	emblem.Logger().Info("emblem written",
		"variant", opts.variant, "backend", opts.backend, "output", output)
	return nil
}

// outputExt maps a backend to the extension of the files it writes.
var outputExt = map[string]string{
	"svg":    ".svg",
	"raster": ".png",
}

// outputPath returns -o, or the variant name with the backend's extension.
func outputPath(opts options) string {
	if opts.output != "" {
		return opts.output
	}
	ext, ok := outputExt[opts.backend]
	if !ok {
		ext = "." + opts.backend
	}
	return opts.variant + ext
}

func loadVariants(path string) (emblem.Variants, error) {
	if path == "" {
		return emblem.Variants{emblem.DefaultVariant: emblem.DefaultConfig()}, nil
	}
	return emblem.LoadConfigFile(path)
}

func write(b recording.Backend, output string, stdout io.Writer) error {
	if output == "-" {
		wb, ok := b.(recording.WriterBackend)
		if !ok {
			return fmt.Errorf("backend %T cannot write to a stream", b)
		}
		_, err := wb.WriteTo(stdout)
		return err
	}
	fb, ok := b.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("backend %T cannot write files", b)
	}
	return fb.SaveToFile(output)
}
