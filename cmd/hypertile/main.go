// Command hypertile writes a regular hyperbolic tiling as SVG or PNG.
//
// Everything is configured through HYPERTILE_* environment variables, for
// example:
//
//	HYPERTILE_N=5 HYPERTILE_K=4 HYPERTILE_DEPTH=4 HYPERTILE_OUTPUT=54.svg hypertile
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dyed-eye/posteuclid"
	"github.com/dyed-eye/posteuclid/euclid"
	"github.com/dyed-eye/posteuclid/hyperbolic"
	"github.com/dyed-eye/posteuclid/internal/config"
	"github.com/dyed-eye/posteuclid/poincare"
	"github.com/dyed-eye/posteuclid/render"
	"github.com/dyed-eye/posteuclid/tiling"
	"github.com/dyed-eye/posteuclid/weierstrass"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	posteuclid.SetLogger(logger)

	if err := run(cfg); err != nil {
		slog.Error("hypertile", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	switch cfg.Model {
	case config.ModelWeierstrass:
		return generate(cfg, weierstrass.NewScene())
	default:
		return generate(cfg, poincare.NewScene())
	}
}

func generate[T any, P hyperbolic.Point[T, P], S hyperbolic.Segment[T, S]](cfg *config.Config, scene *hyperbolic.Scene[T, P, S]) error {
	g, err := tiling.NewGenerator(scene,
		tiling.WithTolerance(cfg.Tolerance),
		tiling.WithVertexItems(cfg.Vertices),
	)
	if err != nil {
		return err
	}

	start := time.Now()
	if _, err := g.Generate(cfg.Schlafli(), cfg.Depth); err != nil {
		return fmt.Errorf("generate %v: %w", cfg.Schlafli(), err)
	}
	slog.Info("tiling ready",
		"model", cfg.Model, "schlafli", cfg.Schlafli().String(), "depth", cfg.Depth,
		"points", scene.NumPoints(), "items", len(scene.Items()),
		"elapsed", time.Since(start))

	// Bring the requested view center to the origin, then turn.
	if err := scene.TranslateDisk(euclid.Pt(-cfg.ViewX, -cfg.ViewY)); err != nil {
		return fmt.Errorf("move view: %w", err)
	}
	scene.Rotate(cfg.ViewRotation)

	opts, err := cfg.RenderOptions()
	if err != nil {
		return err
	}
	return writeOutput(cfg.Output, func(w io.Writer) error {
		if cfg.Format == config.FormatPNG {
			return render.WritePNG(w, scene.Renderables(), opts)
		}
		return render.WriteSVG(w, scene.Renderables(), opts)
	})
}

// writeOutput runs write against stdout for "-", otherwise against a new
// file at path.
func writeOutput(path string, write func(io.Writer) error) (err error) {
	if path == "-" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := write(f); err != nil {
		return err
	}
	slog.Info("wrote output", "path", path)
	return nil
}
